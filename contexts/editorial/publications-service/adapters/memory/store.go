package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"editorial/contexts/editorial/publications-service/domain/entities"
	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
	"editorial/contexts/editorial/publications-service/ports"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Store struct {
	mu sync.RWMutex

	publications map[string]entities.Publication
	statusLog    []entities.StatusChange
}

func NewStore(seed []entities.Publication) *Store {
	publications := make(map[string]entities.Publication, len(seed))
	for _, item := range seed {
		publications[item.PublicationID] = item
	}
	return &Store{
		publications: publications,
		statusLog:    make([]entities.StatusChange, 0),
	}
}

func (s *Store) CreatePublication(_ context.Context, publication entities.Publication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.publications[publication.PublicationID]; exists {
		return domainerrors.ErrInvalidPublicationInput
	}
	s.publications[publication.PublicationID] = publication
	return nil
}

func (s *Store) UpdatePublication(_ context.Context, publication entities.Publication, expectedStatus entities.PublicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.publications[publication.PublicationID]
	if !exists {
		return domainerrors.ErrPublicationNotFound
	}
	if current.Status != expectedStatus {
		// A concurrent change moved the record; the requested edge no
		// longer starts at the caller's read-time status.
		return domainerrors.ErrInvalidTransition
	}
	s.publications[publication.PublicationID] = publication
	return nil
}

func (s *Store) GetPublication(_ context.Context, publicationID string) (entities.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.publications[strings.TrimSpace(publicationID)]
	if !exists {
		return entities.Publication{}, domainerrors.ErrPublicationNotFound
	}
	return item, nil
}

func (s *Store) ListPublications(_ context.Context, filter ports.PublicationFilter) (ports.PublicationPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Publication, 0, len(s.publications))
	for _, publication := range s.publications {
		if filter.AuthorID != "" && publication.AuthorID != filter.AuthorID {
			continue
		}
		items = append(items, publication)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	page, size := normalizePaging(filter.Page, filter.Size)
	total := int64(len(items))
	start := page * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return ports.PublicationPage{
		Items:      items[start:end],
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages(total, size),
	}, nil
}

func (s *Store) AppendStatusChange(_ context.Context, item entities.StatusChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statusLog = append(s.statusLog, item)
	return nil
}

func (s *Store) ListStatusChanges(_ context.Context, publicationID string) ([]entities.StatusChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.StatusChange, 0)
	for _, item := range s.statusLog {
		if item.PublicationID == strings.TrimSpace(publicationID) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
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
