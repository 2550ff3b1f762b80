package marketplace_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent_reviews/internal/adapters/marketplace"
	"talent_reviews/internal/domain"
)

func TestClient_GetReviews_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			if r.Header.Get("X-API-Key") != "test-key" {
				w.WriteHeader(401)
				return
			}
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "r1", "rating": 5.0}})
		}
	}))
	defer ts.Close()

	cl, err := marketplace.New(ts.URL, "test-key", 100) // high RPS for tests
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got, err := cl.GetReviews(ctx, 123, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0]["id"])
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(3), "retries")
}

func TestClient_GetDisputes_Envelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/freelancers/9/disputes" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"id": "d1"}, {"id": "d2"}}})
	}))
	defer ts.Close()

	cl, err := marketplace.New(ts.URL, "test-key", 100)
	require.NoError(t, err)
	got, err := cl.GetDisputes(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClient_GetReviews_404FallsThroughCandidates(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.NotFound(w, r)
	}))
	defer ts.Close()

	cl, err := marketplace.New(ts.URL, "test-key", 100)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.GetReviews(ctx, 1, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "both candidate URLs tried")
}

func TestClient_Forbidden(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	cl, err := marketplace.New(ts.URL, "test-key", 100)
	require.NoError(t, err)
	_, err = cl.GetDisputes(context.Background(), 1)
	assert.ErrorIs(t, err, marketplace.ErrForbidden)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := marketplace.New("http://x", "", 1)
	assert.Error(t, err)
}
