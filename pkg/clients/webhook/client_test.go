package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/finca/internal/config"
	"github.com/mamadbah2/finca/internal/domain/models"
)

func TestSendDigestPostsPayloadWithToken(t *testing.T) {
	var got payload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(config.WebhookConfig{URL: srv.URL, Token: "secret", Timeout: time.Second})
	digest := models.DashboardDigest{
		Date:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Summary: "Resumen 2026-03-15",
	}
	require.NoError(t, client.SendDigest(context.Background(), digest))

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "dashboard.digest", got.Event)
	assert.Equal(t, "Resumen 2026-03-15", got.Text)
	assert.True(t, digest.Date.Equal(got.Digest.Date))
}

func TestSendDigestReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream down"}`))
	}))
	defer srv.Close()

	client := NewClient(config.WebhookConfig{URL: srv.URL})
	err := client.SendDigest(context.Background(), models.DashboardDigest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=502")
	assert.Contains(t, err.Error(), "upstream down")
}
