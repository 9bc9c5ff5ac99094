package commands

import (
	"context"
	"log/slog"
	"strings"

	application "editorial/contexts/editorial/publications-service/application"
	"editorial/contexts/editorial/publications-service/domain/entities"
	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
	"editorial/contexts/editorial/publications-service/ports"
)

type CreatePublicationCommand struct {
	Title    string
	Content  string
	AuthorID string

	// Optional review metadata accepted with the draft and carried until
	// the transition that requires it.
	EditorName      string
	RejectionReason string
	ReviewComments  string
}

type CreatePublicationUseCase struct {
	Publications ports.PublicationRepository
	History      ports.HistoryRepository
	Authors      ports.AuthorGateway
	Enricher     application.Enricher
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

// Execute creates a publication in draft. Author existence is a hard
// precondition: a registry "no" aborts with ErrAuthorNotFound and a registry
// failure propagates as-is. Nothing is persisted on either path.
func (uc CreatePublicationUseCase) Execute(ctx context.Context, cmd CreatePublicationCommand) (application.View, error) {
	logger := application.ResolveLogger(uc.Logger)
	authorID := strings.TrimSpace(cmd.AuthorID)

	exists, err := uc.Authors.Exists(ctx, authorID)
	if err != nil {
		return application.View{}, err
	}
	if !exists {
		return application.View{}, domainerrors.ErrAuthorNotFound
	}

	publicationID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return application.View{}, err
	}

	now := uc.Clock.Now().UTC()
	publication := entities.Publication{
		PublicationID:   publicationID,
		Title:           strings.TrimSpace(cmd.Title),
		Content:         cmd.Content,
		AuthorID:        authorID,
		Status:          entities.StatusDraft,
		EditorName:      strings.TrimSpace(cmd.EditorName),
		RejectionReason: strings.TrimSpace(cmd.RejectionReason),
		ReviewComments:  strings.TrimSpace(cmd.ReviewComments),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.Publications.CreatePublication(ctx, publication); err != nil {
		return application.View{}, err
	}

	changeID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return application.View{}, err
	}
	if err := uc.History.AppendStatusChange(ctx, entities.StatusChange{
		ChangeID:      changeID,
		PublicationID: publication.PublicationID,
		ToStatus:      entities.StatusDraft,
		Reason:        "created",
		CreatedAt:     now,
	}); err != nil {
		return application.View{}, err
	}

	logger.Info("publication created",
		"event", "publication_created",
		"module", "editorial/publications-service",
		"layer", "application",
		"publication_id", publication.PublicationID,
		"author_id", publication.AuthorID,
	)
	return uc.Enricher.One(ctx, publication), nil
}
