package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"editorial/contexts/editorial/publications-service/application"
	"editorial/contexts/editorial/publications-service/application/commands"
	"editorial/contexts/editorial/publications-service/application/queries"
	"editorial/contexts/editorial/publications-service/domain/entities"
	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
	httptransport "editorial/contexts/editorial/publications-service/transport/http"
)

const (
	minTitleLength = 5
	maxTitleLength = 200
)

type Handler struct {
	CreatePublication commands.CreatePublicationUseCase
	ChangeStatus      commands.ChangeStatusUseCase
	GetPublication    queries.GetPublicationUseCase
	ListPublications  queries.ListPublicationsUseCase
	GetHistory        queries.GetHistoryUseCase
	Logger            *slog.Logger
}

func (h Handler) CreatePublicationHandler(ctx context.Context, req httptransport.CreatePublicationRequest) (httptransport.CreatePublicationResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return httptransport.CreatePublicationResponse{}, err
	}
	view, err := h.CreatePublication.Execute(ctx, commands.CreatePublicationCommand{
		Title:           req.Title,
		Content:         req.Content,
		AuthorID:        req.AuthorID,
		EditorName:      req.EditorName,
		RejectionReason: req.RejectionReason,
		ReviewComments:  req.ReviewComments,
	})
	if err != nil {
		return httptransport.CreatePublicationResponse{}, err
	}
	return httptransport.CreatePublicationResponse{Publication: mapView(view)}, nil
}

func (h Handler) GetPublicationHandler(ctx context.Context, publicationID string) (httptransport.GetPublicationResponse, error) {
	view, err := h.GetPublication.Execute(ctx, publicationID)
	if err != nil {
		return httptransport.GetPublicationResponse{}, err
	}
	return httptransport.GetPublicationResponse{Publication: mapView(view)}, nil
}

func (h Handler) ListPublicationsHandler(ctx context.Context, authorID string, page int, size int) (httptransport.ListPublicationsResponse, error) {
	result, err := h.ListPublications.Execute(ctx, queries.ListPublicationsQuery{
		AuthorID: authorID,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return httptransport.ListPublicationsResponse{}, err
	}

	items := make([]httptransport.PublicationDTO, 0, len(result.Items))
	for _, view := range result.Items {
		items = append(items, mapView(view))
	}
	return httptransport.ListPublicationsResponse{
		Items:      items,
		Page:       result.Page,
		Size:       result.Size,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}, nil
}

func (h Handler) ChangeStatusHandler(ctx context.Context, publicationID string, target string, req httptransport.ChangeStatusRequest) (httptransport.ChangeStatusResponse, error) {
	status := entities.PublicationStatus(strings.ToLower(strings.TrimSpace(target)))
	if !entities.IsSupportedStatus(status) {
		return httptransport.ChangeStatusResponse{}, domainerrors.ErrInvalidTransition
	}
	view, err := h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		PublicationID:   publicationID,
		Target:          status,
		Reason:          req.Reason,
		EditorName:      req.EditorName,
		RejectionReason: req.RejectionReason,
		ReviewComments:  req.ReviewComments,
	})
	if err != nil {
		return httptransport.ChangeStatusResponse{}, err
	}
	return httptransport.ChangeStatusResponse{Publication: mapView(view)}, nil
}

func (h Handler) GetHistoryHandler(ctx context.Context, publicationID string) (httptransport.HistoryResponse, error) {
	items, err := h.GetHistory.Execute(ctx, publicationID)
	if err != nil {
		return httptransport.HistoryResponse{}, err
	}

	result := make([]httptransport.StatusChangeDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.StatusChangeDTO{
			ChangeID:   item.ChangeID,
			FromStatus: string(item.FromStatus),
			ToStatus:   string(item.ToStatus),
			Reason:     item.Reason,
			CreatedAt:  item.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.HistoryResponse{
		PublicationID: strings.TrimSpace(publicationID),
		Items:         result,
	}, nil
}

func validateCreateRequest(req httptransport.CreatePublicationRequest) error {
	title := strings.TrimSpace(req.Title)
	if len(title) < minTitleLength || len(title) > maxTitleLength {
		return domainerrors.ErrInvalidPublicationInput
	}
	if strings.TrimSpace(req.Content) == "" {
		return domainerrors.ErrInvalidPublicationInput
	}
	if strings.TrimSpace(req.AuthorID) == "" {
		return domainerrors.ErrInvalidPublicationInput
	}
	return nil
}

func mapView(view application.View) httptransport.PublicationDTO {
	item := view.Publication
	result := httptransport.PublicationDTO{
		PublicationID:   item.PublicationID,
		Title:           item.Title,
		Content:         item.Content,
		AuthorID:        item.AuthorID,
		Status:          string(item.Status),
		ReviewComments:  item.ReviewComments,
		EditorName:      item.EditorName,
		RejectionReason: item.RejectionReason,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
	}
	if view.Author != nil {
		result.Author = &httptransport.AuthorSummaryDTO{
			AuthorID:     view.Author.AuthorID,
			FullName:     view.Author.FullName,
			Email:        view.Author.Email,
			Biography:    view.Author.Biography,
			Organization: view.Author.Organization,
		}
	}
	return result
}
