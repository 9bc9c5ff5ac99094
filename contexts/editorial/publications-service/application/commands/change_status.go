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

type ChangeStatusCommand struct {
	PublicationID string
	Target        entities.PublicationStatus
	Reason        string

	// Review metadata carried with the transition request. Each field is
	// applied to the publication before validation when non-blank.
	EditorName      string
	RejectionReason string
	ReviewComments  string
}

type ChangeStatusUseCase struct {
	Publications ports.PublicationRepository
	History      ports.HistoryRepository
	Enricher     application.Enricher
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	Logger       *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (application.View, error) {
	logger := application.ResolveLogger(uc.Logger)
	publication, err := uc.Publications.GetPublication(ctx, strings.TrimSpace(cmd.PublicationID))
	if err != nil {
		return application.View{}, err
	}

	from := publication.Status
	if !entities.CanTransition(from, cmd.Target) {
		return application.View{}, domainerrors.ErrInvalidTransition
	}

	if value := strings.TrimSpace(cmd.EditorName); value != "" {
		publication.EditorName = value
	}
	if value := strings.TrimSpace(cmd.RejectionReason); value != "" {
		publication.RejectionReason = value
	}
	if value := strings.TrimSpace(cmd.ReviewComments); value != "" {
		publication.ReviewComments = value
	}
	if err := entities.ValidateTransition(publication, cmd.Target); err != nil {
		return application.View{}, err
	}

	now := uc.Clock.Now().UTC()
	publication.Status = cmd.Target
	publication.UpdatedAt = now
	if err := uc.Publications.UpdatePublication(ctx, publication, from); err != nil {
		return application.View{}, err
	}

	changeID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return application.View{}, err
	}
	if err := uc.History.AppendStatusChange(ctx, entities.StatusChange{
		ChangeID:      changeID,
		PublicationID: publication.PublicationID,
		FromStatus:    from,
		ToStatus:      cmd.Target,
		Reason:        strings.TrimSpace(cmd.Reason),
		CreatedAt:     now,
	}); err != nil {
		return application.View{}, err
	}

	logger.Info("publication status changed",
		"event", "publication_status_changed",
		"module", "editorial/publications-service",
		"layer", "application",
		"publication_id", publication.PublicationID,
		"from_status", string(from),
		"to_status", string(cmd.Target),
	)
	return uc.Enricher.One(ctx, publication), nil
}
