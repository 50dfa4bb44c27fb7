package supabase_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supabasego "github.com/supabase-community/supabase-go"
)

func TestRealtimeClient_PublishEventInsertsRow(t *testing.T) {
	var (
		method, path, prefer, apiKey string
		row                          map[string]interface{}
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		prefer, apiKey = r.Header.Get("Prefer"), r.Header.Get("apikey")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &row)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := supabasego.NewClient(server.URL, "publishable-key", nil)
	require.NoError(t, err)
	realtime := supabase.NewRealtimeClient(client, "")

	err = realtime.PublishEvent(supabase.RequestsChannel, "status_updated",
		supabase.StatusUpdatedPayload("14032025-093045", models.StatusPending, models.StatusCompleted))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/rest/v1/repair_events", path)
	assert.Equal(t, "return=minimal", prefer)
	assert.Equal(t, "publishable-key", apiKey)
	assert.Equal(t, "repair_requests", row["channel"])
	assert.Equal(t, "status_updated", row["event"])
	assert.Equal(t, map[string]interface{}{"id": "14032025-093045", "from": "PENDING", "status": "COMPLETED"}, row["payload"])
}

func TestRealtimeClient_PublishEventFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":"42P01","message":"relation \"public.repair_events\" does not exist"}`)
	}))
	defer server.Close()

	client, err := supabasego.NewClient(server.URL, "publishable-key", nil)
	require.NoError(t, err)
	realtime := supabase.NewRealtimeClient(client, "repair_events")

	err = realtime.PublishEvent(supabase.RequestsChannel, "request_created", map[string]interface{}{"id": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42P01")

	assert.NotPanics(t, func() {
		realtime.PublishRequestEvent("request_created", map[string]interface{}{"id": "x"})
	})
}

func TestRealtimeClient_NilClientIsNoop(t *testing.T) {
	client := supabase.NewRealtimeClient(nil, "")
	assert.NoError(t, client.PublishEvent(supabase.RequestsChannel, "request_created", map[string]interface{}{"id": "x"}))

	var missing *supabase.RealtimeClient
	assert.NotPanics(t, func() {
		missing.PublishRequestEvent("status_updated", nil)
	})
}

func TestEventPayloads(t *testing.T) {
	created := supabase.RequestCreatedPayload(models.RepairRequest{
		ID:          "14032025-093045",
		Status:      models.StatusPending,
		ServiceType: models.ServiceTypeRepair,
		CarBrand:    "Toyota",
	})
	assert.Equal(t, "14032025-093045", created["id"])
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, "Repair", created["service_type"])

	updated := supabase.StatusUpdatedPayload("x", models.StatusPending, models.StatusCompleted)
	assert.Equal(t, map[string]interface{}{"id": "x", "from": "PENDING", "status": "COMPLETED"}, updated)

	assert.Equal(t, 4, supabase.RequestsSyncedPayload(4)["count"])
}
