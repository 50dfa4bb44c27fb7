package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoservice-backend/internal/gemini"
	"autoservice-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text       string `json:"text"`
			InlineData *struct {
				MimeType string `json:"mimeType"`
				Data     string `json:"data"`
			} `json:"inlineData"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		ResponseMimeType string `json:"responseMimeType"`
		ResponseSchema   struct {
			Required []string `json:"required"`
		} `json:"responseSchema"`
	} `json:"generationConfig"`
}

func newClient(t *testing.T, baseURL, language string) *gemini.Client {
	t.Helper()
	client, err := gemini.NewClient(context.Background(), baseURL, "test-key", "gemini-test", language)
	require.NoError(t, err)
	return client
}

func respondWith(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(body)
}

func TestDiagnose_Disabled(t *testing.T) {
	client, err := gemini.NewClient(context.Background(), "https://example.test", "", "gemini-test", "Thai")
	require.NoError(t, err)

	assert.False(t, client.Enabled())
	_, err = client.Diagnose(context.Background(), gemini.DiagnosisInput{Description: "noise"})
	assert.ErrorIs(t, err, gemini.ErrDisabled)
}

func TestDiagnose_SendsPromptAndImage(t *testing.T) {
	var captured wireRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = io.WriteString(w, respondWith(`{"possibleIssue":"Worn brake pads","estimatedCostRange":"2,500 - 4,000 THB","urgency":"high"}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, "Thai")
	result, err := client.Diagnose(context.Background(), gemini.DiagnosisInput{
		Description: "Brakes squeal",
		CarBrand:    "Toyota",
		ServiceType: "Repair",
		ImageURL:    "data:image/png;base64,iVBORw0KGgo=",
	})
	require.NoError(t, err)

	assert.Equal(t, "Worn brake pads", result.PossibleIssue)
	assert.Equal(t, "2,500 - 4,000 THB", result.EstimatedCostRange)
	assert.Equal(t, models.UrgencyHigh, result.Urgency)

	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "user", captured.Contents[0].Role)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "Car Brand: Toyota")
	assert.Contains(t, parts[0].Text, "Brakes squeal")
	assert.Contains(t, parts[0].Text, "Thai")
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/png", parts[1].InlineData.MimeType)
	assert.Equal(t, "iVBORw0KGgo=", parts[1].InlineData.Data)
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	assert.Contains(t, captured.GenerationConfig.ResponseSchema.Required, "urgency")
}

func TestDiagnose_RemoteImageIsNotInlined(t *testing.T) {
	var captured wireRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = io.WriteString(w, respondWith("```json\n{\"possibleIssue\":\"Low oil\",\"estimatedCostRange\":\"1500\",\"urgency\":\"urgent\"}\n```"))
	}))
	defer server.Close()

	client := newClient(t, server.URL, "")
	result, err := client.Diagnose(context.Background(), gemini.DiagnosisInput{
		Description: "Oil light",
		CarBrand:    "Honda",
		ImageURL:    "https://cdn.test/photo.jpg",
	})
	require.NoError(t, err)

	assert.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "Low oil", result.PossibleIssue)
	assert.Equal(t, models.UrgencyMedium, result.Urgency)
}

func TestDiagnose_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":429}}`, http.StatusTooManyRequests)
		},
		"empty": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"candidates":[]}`)
		},
		"blocked": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
		},
		"not json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, respondWith("I think it's the brakes."))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			client := newClient(t, server.URL, "Thai")
			result, err := client.Diagnose(context.Background(), gemini.DiagnosisInput{Description: "noise", CarBrand: "Isuzu"})
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
