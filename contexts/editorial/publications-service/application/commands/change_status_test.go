package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"editorial/contexts/editorial/publications-service/adapters/memory"
	"editorial/contexts/editorial/publications-service/application"
	"editorial/contexts/editorial/publications-service/domain/entities"
	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
)

func seedPublication(status entities.PublicationStatus, content string) entities.Publication {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	return entities.Publication{
		PublicationID: "pub-1",
		Title:         "Quantum Widgets",
		Content:       content,
		AuthorID:      "author-1",
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newChangeStatusUseCase(store *memory.Store) ChangeStatusUseCase {
	return ChangeStatusUseCase{
		Publications: store,
		History:      store,
		Enricher:     application.Enricher{},
		Clock:        store,
		IDGenerator:  store,
	}
}

func TestChangeStatusUnknownPublication(t *testing.T) {
	uc := newChangeStatusUseCase(memory.NewStore(nil))
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		PublicationID: "missing",
		Target:        entities.StatusInReview,
	})
	if !errors.Is(err, domainerrors.ErrPublicationNotFound) {
		t.Fatalf("expected ErrPublicationNotFound, got %v", err)
	}
}

func TestChangeStatusFullApprovalWalk(t *testing.T) {
	store := memory.NewStore([]entities.Publication{seedPublication(entities.StatusDraft, "Draft text")})
	uc := newChangeStatusUseCase(store)
	ctx := context.Background()

	view, err := uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusInReview})
	if err != nil {
		t.Fatalf("draft -> in_review failed: %v", err)
	}
	if view.Publication.Status != entities.StatusInReview {
		t.Fatalf("expected in_review, got %s", view.Publication.Status)
	}

	// Approval without an editor must fail with the specific rule error.
	_, err = uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusApproved})
	if !errors.Is(err, domainerrors.ErrMissingEditor) {
		t.Fatalf("expected ErrMissingEditor, got %v", err)
	}

	view, err = uc.Execute(ctx, ChangeStatusCommand{
		PublicationID: "pub-1",
		Target:        entities.StatusApproved,
		EditorName:    "J. Smith",
	})
	if err != nil {
		t.Fatalf("in_review -> approved with editor failed: %v", err)
	}
	if view.Publication.EditorName != "J. Smith" {
		t.Fatalf("editor name must be recorded, got %q", view.Publication.EditorName)
	}

	if _, err = uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusPublished}); err != nil {
		t.Fatalf("approved -> published failed: %v", err)
	}

	// Published is terminal.
	_, err = uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusInReview})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("published must be terminal, got %v", err)
	}

	history, _ := store.ListStatusChanges(ctx, "pub-1")
	if len(history) != 3 {
		t.Fatalf("expected 3 history rows, got %d", len(history))
	}
	if history[2].FromStatus != entities.StatusApproved || history[2].ToStatus != entities.StatusPublished {
		t.Fatalf("last history row mismatch: %+v", history[2])
	}
}

func TestChangeStatusRequiresChangesWalk(t *testing.T) {
	store := memory.NewStore([]entities.Publication{seedPublication(entities.StatusInReview, "body")})
	uc := newChangeStatusUseCase(store)
	ctx := context.Background()

	_, err := uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusRequiresChanges})
	if !errors.Is(err, domainerrors.ErrMissingReviewComments) {
		t.Fatalf("expected ErrMissingReviewComments, got %v", err)
	}

	view, err := uc.Execute(ctx, ChangeStatusCommand{
		PublicationID:  "pub-1",
		Target:         entities.StatusRequiresChanges,
		ReviewComments: "Fix intro",
	})
	if err != nil {
		t.Fatalf("in_review -> requires_changes failed: %v", err)
	}
	if view.Publication.ReviewComments != "Fix intro" {
		t.Fatalf("review comments must be recorded, got %q", view.Publication.ReviewComments)
	}

	// Approval straight from requires_changes skips review.
	_, err = uc.Execute(ctx, ChangeStatusCommand{
		PublicationID: "pub-1",
		Target:        entities.StatusApproved,
		EditorName:    "J. Smith",
	})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("requires_changes -> approved must be rejected, got %v", err)
	}

	if _, err := uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusInReview}); err != nil {
		t.Fatalf("requires_changes -> in_review failed: %v", err)
	}
}

func TestChangeStatusRejectionRequiresReason(t *testing.T) {
	store := memory.NewStore([]entities.Publication{seedPublication(entities.StatusInReview, "body")})
	uc := newChangeStatusUseCase(store)
	ctx := context.Background()

	_, err := uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusRejected})
	if !errors.Is(err, domainerrors.ErrMissingRejectionReason) {
		t.Fatalf("expected ErrMissingRejectionReason, got %v", err)
	}

	if _, err := uc.Execute(ctx, ChangeStatusCommand{
		PublicationID:   "pub-1",
		Target:          entities.StatusRejected,
		RejectionReason: "out of scope",
	}); err != nil {
		t.Fatalf("rejection with reason failed: %v", err)
	}

	// Rejected is terminal.
	_, err = uc.Execute(ctx, ChangeStatusCommand{PublicationID: "pub-1", Target: entities.StatusInReview})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("rejected must be terminal, got %v", err)
	}
}

func TestChangeStatusEmptyContentBlocksReview(t *testing.T) {
	store := memory.NewStore([]entities.Publication{seedPublication(entities.StatusDraft, "   ")})
	uc := newChangeStatusUseCase(store)

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		PublicationID: "pub-1",
		Target:        entities.StatusInReview,
	})
	if !errors.Is(err, domainerrors.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}
