package authorsgw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
)

func TestExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/authors/author-1/exists":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("true"))
		case "/authors/author-2/exists":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("false"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	exists, err := client.Exists(context.Background(), "author-1")
	if err != nil || !exists {
		t.Fatalf("expected author-1 to exist, got exists=%v err=%v", exists, err)
	}

	exists, err = client.Exists(context.Background(), "author-2")
	if err != nil || exists {
		t.Fatalf("expected author-2 to not exist, got exists=%v err=%v", exists, err)
	}

	_, err = client.Exists(context.Background(), "author-3")
	if !errors.Is(err, domainerrors.ErrAuthorServiceUnavailable) {
		t.Fatalf("a failing registry must surface ErrAuthorServiceUnavailable, got %v", err)
	}
}

func TestFetchSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/authors/author-1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"author_id":"author-1","full_name":"Ada Lovelace","email":"ada@example.org","organization":"Analytical Engines"}`))
		case "/authors/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second, nil)

	summary, err := client.FetchSummary(context.Background(), "author-1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if summary.FullName != "Ada Lovelace" || summary.Organization != "Analytical Engines" {
		t.Fatalf("unexpected summary %+v", summary)
	}

	_, err = client.FetchSummary(context.Background(), "gone")
	if !errors.Is(err, domainerrors.ErrAuthorNotFound) {
		t.Fatalf("404 must map to ErrAuthorNotFound, got %v", err)
	}

	_, err = client.FetchSummary(context.Background(), "broken")
	if !errors.Is(err, domainerrors.ErrAuthorServiceUnavailable) {
		t.Fatalf("non-404 failure must map to ErrAuthorServiceUnavailable, got %v", err)
	}
}

func TestClientUnreachableRegistry(t *testing.T) {
	// Point at a closed port.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 200*time.Millisecond, nil)

	if _, err := client.Exists(context.Background(), "author-1"); !errors.Is(err, domainerrors.ErrAuthorServiceUnavailable) {
		t.Fatalf("connection failure must surface ErrAuthorServiceUnavailable, got %v", err)
	}
	if _, err := client.FetchSummary(context.Background(), "author-1"); !errors.Is(err, domainerrors.ErrAuthorServiceUnavailable) {
		t.Fatalf("connection failure must surface ErrAuthorServiceUnavailable, got %v", err)
	}
}
