package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/abelbrown/bookfinder/internal/store"
	"github.com/abelbrown/bookfinder/internal/stub"
)

// startBackend serves the demo catalog over the search API.
func startBackend(t *testing.T) string {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if _, err := st.Add(store.DemoBooks()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	srv := httptest.NewServer(stub.NewServer(stub.NewHandler(st, nil)))
	t.Cleanup(srv.Close)
	return srv.URL
}
