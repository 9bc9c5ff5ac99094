package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"editorial/contexts/editorial/publications-service/domain/entities"
	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
	"editorial/contexts/editorial/publications-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreatePublication(ctx context.Context, publication entities.Publication) error {
	row := publicationModelFromEntity(publication)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidPublicationInput
		}
		return err
	}
	return nil
}

// UpdatePublication writes the row under a row lock, guarded by the status
// the caller read. A status moved by a concurrent writer surfaces as an
// invalid transition so the caller's graph check stays truthful.
func (r *Repository) UpdatePublication(ctx context.Context, publication entities.Publication, expectedStatus entities.PublicationStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row publicationModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("publication_id = ?", strings.TrimSpace(publication.PublicationID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrPublicationNotFound
			}
			return err
		}
		if row.Status != string(expectedStatus) {
			return domainerrors.ErrInvalidTransition
		}

		return tx.Model(&publicationModel{}).
			Where("publication_id = ?", publication.PublicationID).
			Updates(publicationUpdatesFromEntity(publication)).
			Error
	})
}

func (r *Repository) GetPublication(ctx context.Context, publicationID string) (entities.Publication, error) {
	var row publicationModel
	err := r.db.WithContext(ctx).
		Where("publication_id = ?", strings.TrimSpace(publicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Publication{}, domainerrors.ErrPublicationNotFound
		}
		return entities.Publication{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPublications(ctx context.Context, filter ports.PublicationFilter) (ports.PublicationPage, error) {
	page, size := normalizePaging(filter.Page, filter.Size)
	tx := r.db.WithContext(ctx).Model(&publicationModel{})
	if strings.TrimSpace(filter.AuthorID) != "" {
		tx = tx.Where("author_id = ?", strings.TrimSpace(filter.AuthorID))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ports.PublicationPage{}, err
	}

	var rows []publicationModel
	err := tx.Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&rows).
		Error
	if err != nil {
		return ports.PublicationPage{}, err
	}

	items := make([]entities.Publication, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return ports.PublicationPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages(total, size),
	}, nil
}

func (r *Repository) AppendStatusChange(ctx context.Context, item entities.StatusChange) error {
	row := statusChangeModel{
		ChangeID:      strings.TrimSpace(item.ChangeID),
		PublicationID: strings.TrimSpace(item.PublicationID),
		FromStatus:    string(item.FromStatus),
		ToStatus:      string(item.ToStatus),
		Reason:        strings.TrimSpace(item.Reason),
		CreatedAt:     item.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListStatusChanges(ctx context.Context, publicationID string) ([]entities.StatusChange, error) {
	var rows []statusChangeModel
	err := r.db.WithContext(ctx).
		Where("publication_id = ?", strings.TrimSpace(publicationID)).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.StatusChange, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.StatusChange{
			ChangeID:      row.ChangeID,
			PublicationID: row.PublicationID,
			FromStatus:    entities.PublicationStatus(row.FromStatus),
			ToStatus:      entities.PublicationStatus(row.ToStatus),
			Reason:        row.Reason,
			CreatedAt:     row.CreatedAt,
		})
	}
	return items, nil
}

type publicationModel struct {
	PublicationID   string    `gorm:"column:publication_id;primaryKey"`
	Title           string    `gorm:"column:title"`
	Content         string    `gorm:"column:content"`
	AuthorID        string    `gorm:"column:author_id;index"`
	Status          string    `gorm:"column:status"`
	ReviewComments  string    `gorm:"column:review_comments"`
	EditorName      string    `gorm:"column:editor_name"`
	RejectionReason string    `gorm:"column:rejection_reason"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (publicationModel) TableName() string {
	return "publications"
}

func (m publicationModel) toEntity() entities.Publication {
	return entities.Publication{
		PublicationID:   m.PublicationID,
		Title:           m.Title,
		Content:         m.Content,
		AuthorID:        m.AuthorID,
		Status:          entities.PublicationStatus(m.Status),
		ReviewComments:  m.ReviewComments,
		EditorName:      m.EditorName,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func publicationModelFromEntity(item entities.Publication) publicationModel {
	return publicationModel{
		PublicationID:   strings.TrimSpace(item.PublicationID),
		Title:           strings.TrimSpace(item.Title),
		Content:         item.Content,
		AuthorID:        strings.TrimSpace(item.AuthorID),
		Status:          string(item.Status),
		ReviewComments:  strings.TrimSpace(item.ReviewComments),
		EditorName:      strings.TrimSpace(item.EditorName),
		RejectionReason: strings.TrimSpace(item.RejectionReason),
		CreatedAt:       item.CreatedAt.UTC(),
		UpdatedAt:       item.UpdatedAt.UTC(),
	}
}

func publicationUpdatesFromEntity(item entities.Publication) map[string]any {
	row := publicationModelFromEntity(item)
	return map[string]any{
		"title":            row.Title,
		"content":          row.Content,
		"status":           row.Status,
		"review_comments":  row.ReviewComments,
		"editor_name":      row.EditorName,
		"rejection_reason": row.RejectionReason,
		"updated_at":       row.UpdatedAt,
	}
}

type statusChangeModel struct {
	ChangeID      string    `gorm:"column:change_id;primaryKey"`
	PublicationID string    `gorm:"column:publication_id;index"`
	FromStatus    string    `gorm:"column:from_status"`
	ToStatus      string    `gorm:"column:to_status"`
	Reason        string    `gorm:"column:reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (statusChangeModel) TableName() string {
	return "publication_status_changes"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func normalizePaging(page int, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
