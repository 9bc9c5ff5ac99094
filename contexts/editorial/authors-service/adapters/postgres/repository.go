package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"editorial/contexts/editorial/authors-service/domain/entities"
	domainerrors "editorial/contexts/editorial/authors-service/domain/errors"
	"editorial/contexts/editorial/authors-service/ports"
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
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateAuthor(ctx context.Context, author entities.Author) error {
	row := authorModelFromEntity(author)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateAuthor(ctx context.Context, author entities.Author) error {
	result := r.db.WithContext(ctx).
		Model(&authorModel{}).
		Where("author_id = ?", author.AuthorID).
		Updates(authorUpdatesFromEntity(author))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateEmail
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAuthorNotFound
	}
	return nil
}

func (r *Repository) GetAuthor(ctx context.Context, authorID string) (entities.Author, error) {
	var row authorModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Author{}, domainerrors.ErrAuthorNotFound
		}
		return entities.Author{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAuthors(ctx context.Context, page int, size int) (ports.AuthorPage, error) {
	page, size = normalizePaging(page, size)

	var total int64
	if err := r.db.WithContext(ctx).Model(&authorModel{}).Count(&total).Error; err != nil {
		return ports.AuthorPage{}, err
	}

	var rows []authorModel
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(page * size).
		Limit(size).
		Find(&rows).Error
	if err != nil {
		return ports.AuthorPage{}, err
	}

	items := make([]entities.Author, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return ports.AuthorPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages(total, size),
	}, nil
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

type authorModel struct {
	AuthorID     string    `gorm:"column:author_id;primaryKey"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Biography    string    `gorm:"column:biography"`
	Organization string    `gorm:"column:organization"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (authorModel) TableName() string { return "authors" }

func (m authorModel) toEntity() entities.Author {
	return entities.Author{
		AuthorID:     m.AuthorID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Biography:    m.Biography,
		Organization: m.Organization,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func authorModelFromEntity(author entities.Author) authorModel {
	return authorModel{
		AuthorID:     author.AuthorID,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		Email:        author.Email,
		Biography:    author.Biography,
		Organization: author.Organization,
		Active:       author.Active,
		CreatedAt:    author.CreatedAt,
		UpdatedAt:    author.UpdatedAt,
	}
}

func authorUpdatesFromEntity(author entities.Author) map[string]any {
	return map[string]any{
		"first_name":   author.FirstName,
		"last_name":    author.LastName,
		"email":        author.Email,
		"biography":    author.Biography,
		"organization": author.Organization,
		"active":       author.Active,
		"updated_at":   author.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
