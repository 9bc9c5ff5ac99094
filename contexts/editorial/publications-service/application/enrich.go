package application

import (
	"context"
	"log/slog"
	"sync"

	"editorial/contexts/editorial/publications-service/domain/entities"
	"editorial/contexts/editorial/publications-service/ports"
)

const defaultEnrichConcurrency = 5

// View is a publication together with its best-effort author summary.
// Author stays nil when the registry could not serve the lookup.
type View struct {
	Publication entities.Publication
	Author      *entities.AuthorSummary
}

// Enricher attaches author summaries to publication results. Enrichment is a
// soft dependency: a gateway failure degrades the view, never the operation.
type Enricher struct {
	Authors       ports.AuthorGateway
	MaxConcurrent int
	Logger        *slog.Logger
}

func (e Enricher) One(ctx context.Context, publication entities.Publication) View {
	view := View{Publication: publication}
	if e.Authors == nil {
		return view
	}
	summary, err := e.Authors.FetchSummary(ctx, publication.AuthorID)
	if err != nil {
		ResolveLogger(e.Logger).Warn("publication enrichment skipped",
			"event", "publication_enrichment_skipped",
			"module", "editorial/publications-service",
			"layer", "application",
			"publication_id", publication.PublicationID,
			"author_id", publication.AuthorID,
			"error", err.Error(),
		)
		return view
	}
	view.Author = &summary
	return view
}

// Page enriches every item of a page with a bounded fan-out. Each item's
// lookup failure stays local to that item.
func (e Enricher) Page(ctx context.Context, publications []entities.Publication) []View {
	views := make([]View, len(publications))
	if e.Authors == nil {
		for i, publication := range publications {
			views[i] = View{Publication: publication}
		}
		return views
	}

	limit := e.MaxConcurrent
	if limit <= 0 {
		limit = defaultEnrichConcurrency
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, limit)
	for i, publication := range publications {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, publication entities.Publication) {
			defer wg.Done()
			defer func() { <-semaphore }()
			views[i] = e.One(ctx, publication)
		}(i, publication)
	}
	wg.Wait()
	return views
}
