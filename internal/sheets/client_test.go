package sheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RetryWithBackoff(t *testing.T) {
	client := sheets.NewClient("https://script.test/exec", time.Second).WithBackoffs(0, 0)

	callCount := 0
	err := client.RetryWithBackoff(context.Background(), func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := sheets.NewClient("https://script.test/exec", time.Second).WithBackoffs(0, 0)

	err := client.RetryWithBackoff(context.Background(), func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClient_RetryWithBackoff_ReusesLastDelay(t *testing.T) {
	client := sheets.NewClient("https://script.test/exec", time.Second).WithBackoffs(0, 20*time.Millisecond)

	callCount := 0
	start := time.Now()
	err := client.RetryWithBackoff(context.Background(), func() error {
		callCount++
		return assert.AnError
	}, 5)

	assert.Error(t, err)
	assert.Equal(t, 5, callCount)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestClient_RetryWithBackoff_ContextCancelled(t *testing.T) {
	client := sheets.NewClient("https://script.test/exec", time.Second).WithBackoffs(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.RetryWithBackoff(ctx, func() error { return assert.AnError }, 3)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_NotConfigured(t *testing.T) {
	client := sheets.NewClient("", time.Second)

	assert.False(t, client.Configured())
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, sheets.ErrNotConfigured)
	assert.ErrorIs(t, client.Append(context.Background(), models.RepairRequest{}), sheets.ErrNotConfigured)

	calls := 0
	err = client.RetryWithBackoff(context.Background(), func() error {
		calls++
		return client.UpdateStatus(context.Background(), "x", models.StatusCompleted)
	}, 3)
	assert.ErrorIs(t, err, sheets.ErrNotConfigured)
	assert.Equal(t, 1, calls)
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = io.WriteString(w, `[
			{"id":"14032025-093045","customerName":"Somchai","phoneNumber":812345678,"carBrand":"Toyota","carModel":"Camry","serviceType":"Repair","status":"IN_PROGRESS","createdAt":"2025-03-14T02:30:45.000Z","estimatedCost":"3,500","AiDiagnosis":"Worn pads","ImageUrl":"https://cdn.test/p.jpg","selectedProductId":"svc-brake"},
			{"ID":"legacy","CustomerName":"","estimatedCost":0}
		]`)
	}))
	defer server.Close()

	requests, err := sheets.NewClient(server.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)

	first := requests[0]
	assert.Equal(t, "14032025-093045", first.ID)
	assert.Equal(t, "812345678", first.PhoneNumber)
	assert.Equal(t, models.ServiceTypeRepair, first.ServiceType)
	assert.Equal(t, models.StatusInProgress, first.Status)
	require.NotNil(t, first.EstimatedCost)
	assert.Equal(t, 3500.0, *first.EstimatedCost)
	assert.Equal(t, "Worn pads", first.AIDiagnosis)
	assert.Equal(t, "https://cdn.test/p.jpg", first.ImageURL)
	assert.Equal(t, "svc-brake", first.SelectedProductID)

	second := requests[1]
	assert.Equal(t, "legacy", second.ID)
	assert.Equal(t, sheets.UnknownCustomer, second.CustomerName)
	assert.Equal(t, models.ServiceTypeService, second.ServiceType)
	assert.Equal(t, models.StatusPending, second.Status)
	assert.NotEmpty(t, second.CreatedAt)
	assert.Nil(t, second.EstimatedCost)
}

func TestClient_FetchNonArrayIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"no sheet"}`)
	}))
	defer server.Close()

	requests, err := sheets.NewClient(server.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestClient_FetchErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"html": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>Sign in</html>")
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			_, err := sheets.NewClient(server.URL, time.Second).Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestClient_Writes(t *testing.T) {
	var bodies []map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		_, _ = io.WriteString(w, "Success")
	}))
	defer server.Close()

	client := sheets.NewClient(server.URL, time.Second)
	require.NoError(t, client.Append(context.Background(), models.RepairRequest{
		ID:                "14032025-093045",
		CustomerName:      "Somchai",
		Status:            models.StatusPending,
		SelectedProductID: "svc-brake",
	}))
	require.NoError(t, client.UpdateStatus(context.Background(), "14032025-093045", models.StatusCompleted))

	require.Len(t, bodies, 2)
	assert.Equal(t, "add", bodies[0]["action"])
	assert.Equal(t, "Somchai", bodies[0]["customerName"])
	assert.Equal(t, "PENDING", bodies[0]["status"])
	assert.Equal(t, "svc-brake", bodies[0]["selectedProductId"])
	assert.Equal(t, map[string]interface{}{"action": "updateStatus", "id": "14032025-093045", "status": "COMPLETED"}, bodies[1])
}

func TestClient_WriteRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := sheets.NewClient(server.URL, time.Second).Append(context.Background(), models.RepairRequest{ID: "x"})
	assert.Error(t, err)
}

func TestScript(t *testing.T) {
	script := sheets.Script()
	assert.Contains(t, script, "function doGet")
	assert.Contains(t, script, "function doPost")
	assert.Contains(t, script, `"selectedProductId"];`)
	assert.Contains(t, script, "orBlank(payload.selectedProductId)")
	assert.Contains(t, script, "orBlank(payload.estimatedCost)")
	assert.NotContains(t, script, `payload.estimatedCost || ""`)
}
