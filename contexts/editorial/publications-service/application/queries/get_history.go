package queries

import (
	"context"
	"log/slog"
	"strings"

	"editorial/contexts/editorial/publications-service/domain/entities"
	"editorial/contexts/editorial/publications-service/ports"
)

type GetHistoryUseCase struct {
	Publications ports.PublicationRepository
	History      ports.HistoryRepository
	Logger       *slog.Logger
}

func (uc GetHistoryUseCase) Execute(ctx context.Context, publicationID string) ([]entities.StatusChange, error) {
	id := strings.TrimSpace(publicationID)
	if _, err := uc.Publications.GetPublication(ctx, id); err != nil {
		return nil, err
	}
	return uc.History.ListStatusChanges(ctx, id)
}
