package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCurated(t *testing.T) {
	url, ok := lookupCurated("tomato")
	require.True(t, ok)
	assert.Contains(t, url, "unsplash.com")

	// Case and whitespace are normalized.
	upper, ok := lookupCurated("  Tomato ")
	require.True(t, ok)
	assert.Equal(t, url, upper)

	// Substring matches resolve to the same entry as the exact key.
	sub, ok := lookupCurated("cherry tomatoes")
	require.True(t, ok)
	assert.Equal(t, url, sub)

	_, ok = lookupCurated("dragonfruit")
	assert.False(t, ok)

	_, ok = lookupCurated("")
	assert.False(t, ok)
}

func TestLookupCuratedSubstringIsDeterministic(t *testing.T) {
	// "pepper" matches both "bell pepper" and any later pepper entry; the
	// first table entry must win on every call.
	first, ok := lookupCurated("pepper")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		got, ok := lookupCurated("pepper")
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
}

func TestResolveFallsBackToGenericURL(t *testing.T) {
	// No curated match and no API key configured: Resolve never errors, it
	// degrades to the generic image.
	r := &pixabayResolver{
		client:   &http.Client{Timeout: time.Second},
		endpoint: "http://127.0.0.1:0",
	}

	got := r.Resolve(context.Background(), "dragonfruit")
	assert.Equal(t, GenericFoodImageURL, got)
}

func TestResolvePrefersCuratedOverPixabay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("curated match must not reach the network")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := &pixabayResolver{
		client:   server.Client(),
		endpoint: server.URL,
	}

	got := r.Resolve(context.Background(), "tomato")
	assert.Contains(t, got, "unsplash.com")
}
