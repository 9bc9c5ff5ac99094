package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	authorsservice "editorial/contexts/editorial/authors-service"
	authorsapp "editorial/contexts/editorial/authors-service/application"
	authorserrors "editorial/contexts/editorial/authors-service/domain/errors"
	publicationsservice "editorial/contexts/editorial/publications-service"
	publicationsentities "editorial/contexts/editorial/publications-service/domain/entities"
	publicationserrors "editorial/contexts/editorial/publications-service/domain/errors"
)

// localRegistry bridges the publications module to the in-process
// authors module, standing in for the HTTP registry client. Flipping
// down simulates a registry outage.
type localRegistry struct {
	service authorsapp.Service
	down    bool
}

func (g *localRegistry) Exists(ctx context.Context, authorID string) (bool, error) {
	if g.down {
		return false, publicationserrors.ErrAuthorServiceUnavailable
	}
	return g.service.AuthorExists(ctx, authorID)
}

func (g *localRegistry) FetchSummary(ctx context.Context, authorID string) (publicationsentities.AuthorSummary, error) {
	if g.down {
		return publicationsentities.AuthorSummary{}, publicationserrors.ErrAuthorServiceUnavailable
	}
	author, err := g.service.GetAuthor(ctx, authorID)
	if err != nil {
		if errors.Is(err, authorserrors.ErrAuthorNotFound) {
			return publicationsentities.AuthorSummary{}, publicationserrors.ErrAuthorNotFound
		}
		return publicationsentities.AuthorSummary{}, err
	}
	return publicationsentities.AuthorSummary{
		AuthorID:     author.AuthorID,
		FullName:     author.FullName(),
		Email:        author.Email,
		Biography:    author.Biography,
		Organization: author.Organization,
	}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, authorsservice.Module, *localRegistry) {
	t.Helper()
	authors := authorsservice.NewInMemoryModule(nil)
	registry := &localRegistry{service: authors.Service}
	publications := publicationsservice.NewInMemoryModule(nil, registry, nil)
	server := New(publications, authors, nil, "")
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, authors, registry
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func registerAuthor(t *testing.T, baseURL string) string {
	t.Helper()
	resp := postJSON(t, baseURL+"/authors", map[string]string{
		"first_name": "Maria",
		"last_name":  "Santos",
		"email":      "maria@example.org",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register author: status %d", resp.StatusCode)
	}
	var author struct {
		AuthorID string `json:"author_id"`
	}
	decodeBody(t, resp, &author)
	return author.AuthorID
}

func TestAuthorRegistryEndpoints(t *testing.T) {
	ts, _, _ := newTestServer(t)

	authorID := registerAuthor(t, ts.URL)

	resp, err := http.Get(ts.URL + "/authors/" + authorID + "/exists")
	if err != nil {
		t.Fatalf("GET exists: %v", err)
	}
	var exists bool
	decodeBody(t, resp, &exists)
	if !exists {
		t.Fatal("expected registered author to exist")
	}

	resp, err = http.Get(ts.URL + "/authors/missing/exists")
	if err != nil {
		t.Fatalf("GET exists for unknown: %v", err)
	}
	decodeBody(t, resp, &exists)
	if exists {
		t.Fatal("expected unknown author to report false")
	}

	resp = postJSON(t, ts.URL+"/authors", map[string]string{
		"first_name": "Other",
		"last_name":  "Person",
		"email":      "maria@example.org",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/authors/"+authorID, nil)
	if err != nil {
		t.Fatalf("build DELETE request: %v", err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE author: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/authors/" + authorID)
	if err != nil {
		t.Fatalf("GET author after delete: %v", err)
	}
	var record struct {
		Active bool `json:"active"`
	}
	decodeBody(t, resp, &record)
	if record.Active {
		t.Fatal("expected deleted author to be marked inactive, not gone")
	}

	resp, err = http.Get(ts.URL + "/authors/" + authorID + "/exists")
	if err != nil {
		t.Fatalf("GET exists after delete: %v", err)
	}
	decodeBody(t, resp, &exists)
	if !exists {
		t.Fatal("expected deactivated author to still exist")
	}

	resp = postJSON(t, ts.URL+"/authors", map[string]string{
		"first_name": "Other",
		"last_name":  "Person",
		"email":      "other@example.org",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register second author: status %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/authors?page=0&size=1")
	if err != nil {
		t.Fatalf("GET authors page: %v", err)
	}
	var listed struct {
		Items      []json.RawMessage `json:"items"`
		Page       int               `json:"page"`
		Size       int               `json:"size"`
		TotalItems int64             `json:"total_items"`
		TotalPages int               `json:"total_pages"`
	}
	decodeBody(t, resp, &listed)
	if len(listed.Items) != 1 || listed.Size != 1 || listed.TotalItems != 2 || listed.TotalPages != 2 {
		t.Fatalf("unexpected authors page: %+v", listed)
	}
}

func TestCreatePublicationEndpoint(t *testing.T) {
	ts, _, _ := newTestServer(t)
	authorID := registerAuthor(t, ts.URL)

	resp := postJSON(t, ts.URL+"/publications", map[string]string{
		"title":     "Hi",
		"content":   "body",
		"author_id": authorID,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short title, got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/publications", map[string]string{
		"title":     "Consensus in Practice",
		"content":   "A field report.",
		"author_id": "unregistered-author",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown author, got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/publications", map[string]string{
		"title":     "Consensus in Practice",
		"content":   "A field report.",
		"author_id": authorID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		Publication struct {
			PublicationID string `json:"publication_id"`
			Status        string `json:"status"`
			Author        *struct {
				FullName string `json:"full_name"`
			} `json:"author"`
		} `json:"publication"`
	}
	decodeBody(t, resp, &created)
	if created.Publication.Status != "draft" {
		t.Fatalf("expected draft status, got %q", created.Publication.Status)
	}
	if created.Publication.Author == nil || created.Publication.Author.FullName != "Maria Santos" {
		t.Fatalf("expected enriched author, got %+v", created.Publication.Author)
	}
}

func TestChangeStatusEndpoint(t *testing.T) {
	ts, _, _ := newTestServer(t)
	authorID := registerAuthor(t, ts.URL)

	resp := postJSON(t, ts.URL+"/publications", map[string]string{
		"title":     "Consensus in Practice",
		"content":   "A field report.",
		"author_id": authorID,
	})
	var created struct {
		Publication struct {
			PublicationID string `json:"publication_id"`
		} `json:"publication"`
	}
	decodeBody(t, resp, &created)
	publicationID := created.Publication.PublicationID

	patch := func(target string, body map[string]string) *http.Response {
		payload, _ := json.Marshal(body)
		url := fmt.Sprintf("%s/publications/%s/status?status=%s", ts.URL, publicationID, target)
		req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("build PATCH request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("PATCH %s: %v", url, err)
		}
		return resp
	}

	resp = patch("approved", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for draft to approved, got %d", resp.StatusCode)
	}

	resp = patch("in_review", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for draft to in_review, got %d", resp.StatusCode)
	}

	resp = patch("approved", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for approval without editor, got %d", resp.StatusCode)
	}

	resp = patch("approved", map[string]string{"editor_name": "J. Smith"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for approval with editor, got %d", resp.StatusCode)
	}
	var changed struct {
		Publication struct {
			Status     string `json:"status"`
			EditorName string `json:"editor_name"`
		} `json:"publication"`
	}
	decodeBody(t, resp, &changed)
	if changed.Publication.Status != "approved" || changed.Publication.EditorName != "J. Smith" {
		t.Fatalf("unexpected publication after approval: %+v", changed.Publication)
	}

	resp, err := http.Get(ts.URL + "/publications/" + publicationID + "/history")
	if err != nil {
		t.Fatalf("GET history: %v", err)
	}
	var history struct {
		Items []struct {
			FromStatus string `json:"from_status"`
			ToStatus   string `json:"to_status"`
		} `json:"items"`
	}
	decodeBody(t, resp, &history)
	if len(history.Items) != 3 {
		t.Fatalf("expected 3 history rows, got %d", len(history.Items))
	}
	if history.Items[2].ToStatus != "approved" || history.Items[2].FromStatus != "in_review" {
		t.Fatalf("unexpected last history row %+v", history.Items[2])
	}
}

func TestGetPublicationDegradesWhenRegistryDown(t *testing.T) {
	ts, authors, registry := newTestServer(t)
	authorID := registerAuthor(t, ts.URL)

	resp := postJSON(t, ts.URL+"/publications", map[string]string{
		"title":     "Consensus in Practice",
		"content":   "A field report.",
		"author_id": authorID,
	})
	var created struct {
		Publication struct {
			PublicationID string `json:"publication_id"`
		} `json:"publication"`
	}
	decodeBody(t, resp, &created)
	publicationID := created.Publication.PublicationID

	// Deactivating the author keeps the registry record readable, so
	// enrichment still works.
	if err := authors.Service.DeactivateAuthor(context.Background(), authorID); err != nil {
		t.Fatalf("deactivate author: %v", err)
	}
	resp, err := http.Get(ts.URL + "/publications/" + publicationID)
	if err != nil {
		t.Fatalf("GET publication: %v", err)
	}
	var enriched struct {
		Publication struct {
			Author *struct {
				FullName string `json:"full_name"`
			} `json:"author"`
		} `json:"publication"`
	}
	decodeBody(t, resp, &enriched)
	if enriched.Publication.Author == nil || enriched.Publication.Author.FullName != "Maria Santos" {
		t.Fatalf("expected enrichment to survive deactivation, got %+v", enriched.Publication.Author)
	}

	registry.down = true

	resp, err = http.Get(ts.URL + "/publications/" + publicationID)
	if err != nil {
		t.Fatalf("GET publication with registry down: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 despite registry outage, got %d", resp.StatusCode)
	}
	var fetched struct {
		Publication struct {
			AuthorID string          `json:"author_id"`
			Author   json.RawMessage `json:"author"`
		} `json:"publication"`
	}
	decodeBody(t, resp, &fetched)
	if fetched.Publication.AuthorID != authorID {
		t.Fatalf("expected author id %q preserved, got %q", authorID, fetched.Publication.AuthorID)
	}
	if len(fetched.Publication.Author) != 0 {
		t.Fatalf("expected author omitted, got %s", fetched.Publication.Author)
	}
}

func TestUnknownPublicationReturns404(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/publications/does-not-exist")
	if err != nil {
		t.Fatalf("GET publication: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	if body.Code != "publication_not_found" {
		t.Fatalf("unexpected error code %q", body.Code)
	}
}
