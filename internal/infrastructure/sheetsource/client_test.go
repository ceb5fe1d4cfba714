package sheetsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/infrastructure/cache"
)

func csvServer(t *testing.T, hits *atomic.Int32, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRowsDecodesCSV(t *testing.T) {
	var hits atomic.Int32
	srv := csvServer(t, &hits, "nome,email\nAna,ana@ex.com\nBia,bia@ex.com\n")

	client := New(5*time.Second, cache.New(), time.Minute)
	rows, err := client.FetchRows(context.Background(), srv.URL, false)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"nome", "email"}, rows[0])
	assert.Equal(t, []string{"Ana", "ana@ex.com"}, rows[1])
}

func TestFetchRowsToleratesRaggedRows(t *testing.T) {
	var hits atomic.Int32
	srv := csvServer(t, &hits, "a,b,c\n1,2\n3,4,5,6\n")

	client := New(5*time.Second, cache.New(), time.Minute)
	rows, err := client.FetchRows(context.Background(), srv.URL, false)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 4)
}

func TestFetchRowsUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := csvServer(t, &hits, "a\n1\n")

	client := New(5*time.Second, cache.New(), time.Minute)

	_, err := client.FetchRows(context.Background(), srv.URL, false)
	require.NoError(t, err)
	_, err = client.FetchRows(context.Background(), srv.URL, false)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchRowsRefreshBypassesCache(t *testing.T) {
	var hits atomic.Int32
	srv := csvServer(t, &hits, "a\n1\n")

	client := New(5*time.Second, cache.New(), time.Minute)

	_, err := client.FetchRows(context.Background(), srv.URL, false)
	require.NoError(t, err)
	_, err = client.FetchRows(context.Background(), srv.URL, true)
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestFetchRowsEmptyURL(t *testing.T) {
	client := New(5*time.Second, cache.New(), time.Minute)
	_, err := client.FetchRows(context.Background(), "", false)
	assert.Error(t, err)
}

func TestFetchRowsRetriesOnServerError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "instável", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("a\n1\n"))
	}))
	t.Cleanup(srv.Close)

	client := New(5*time.Second, cache.New(), time.Minute)
	rows, err := client.FetchRows(context.Background(), srv.URL, false)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchRowsDoesNotRetryClientError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "planilha não publicada", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := New(5*time.Second, cache.New(), time.Minute)
	_, err := client.FetchRows(context.Background(), srv.URL, false)

	// 4xx é definitivo: uma única tentativa
	assert.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchRowsGivesUpAfterRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "fora do ar", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := New(5*time.Second, cache.New(), time.Minute)
	_, err := client.FetchRows(context.Background(), srv.URL, false)

	assert.Error(t, err)
	assert.Equal(t, int32(3), hits.Load())
}
