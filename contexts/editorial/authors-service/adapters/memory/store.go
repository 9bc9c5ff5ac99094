package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"editorial/contexts/editorial/authors-service/domain/entities"
	domainerrors "editorial/contexts/editorial/authors-service/domain/errors"
	"editorial/contexts/editorial/authors-service/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Store keeps the author registry in process memory. It implements
// AuthorRepository, Clock and IDGenerator for tests and local runs.
type Store struct {
	mu      sync.RWMutex
	authors map[string]entities.Author
}

func NewStore() *Store {
	return &Store{authors: make(map[string]entities.Author)}
}

func (s *Store) CreateAuthor(_ context.Context, author entities.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.authors[author.AuthorID]; exists {
		return domainerrors.ErrInvalidAuthorInput
	}
	if s.emailTakenLocked(author.Email, "") {
		return domainerrors.ErrDuplicateEmail
	}
	s.authors[author.AuthorID] = author
	return nil
}

func (s *Store) UpdateAuthor(_ context.Context, author entities.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.authors[author.AuthorID]; !exists {
		return domainerrors.ErrAuthorNotFound
	}
	if s.emailTakenLocked(author.Email, author.AuthorID) {
		return domainerrors.ErrDuplicateEmail
	}
	s.authors[author.AuthorID] = author
	return nil
}

func (s *Store) GetAuthor(_ context.Context, authorID string) (entities.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	author, exists := s.authors[authorID]
	if !exists {
		return entities.Author{}, domainerrors.ErrAuthorNotFound
	}
	return author, nil
}

func (s *Store) ListAuthors(_ context.Context, page int, size int) (ports.AuthorPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]entities.Author, 0, len(s.authors))
	for _, author := range s.authors {
		all = append(all, author)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].AuthorID < all[j].AuthorID
	})

	page, size = normalizePaging(page, size)
	total := int64(len(all))
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}

	return ports.AuthorPage{
		Items:      all[start:end],
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

func (s *Store) emailTakenLocked(email string, excludeID string) bool {
	for id, existing := range s.authors {
		if id == excludeID {
			continue
		}
		if strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
