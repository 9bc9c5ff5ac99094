package publicationsservice

import (
	"log/slog"

	httpadapter "editorial/contexts/editorial/publications-service/adapters/http"
	"editorial/contexts/editorial/publications-service/adapters/memory"
	"editorial/contexts/editorial/publications-service/application"
	"editorial/contexts/editorial/publications-service/application/commands"
	"editorial/contexts/editorial/publications-service/application/queries"
	"editorial/contexts/editorial/publications-service/domain/entities"
	"editorial/contexts/editorial/publications-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Publications      ports.PublicationRepository
	History           ports.HistoryRepository
	Authors           ports.AuthorGateway
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	EnrichConcurrency int
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	enricher := application.Enricher{
		Authors:       deps.Authors,
		MaxConcurrent: deps.EnrichConcurrency,
		Logger:        deps.Logger,
	}

	createPublication := commands.CreatePublicationUseCase{
		Publications: deps.Publications,
		History:      deps.History,
		Authors:      deps.Authors,
		Enricher:     enricher,
		Clock:        deps.Clock,
		IDGenerator:  deps.IDGenerator,
		Logger:       deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Publications: deps.Publications,
		History:      deps.History,
		Enricher:     enricher,
		Clock:        deps.Clock,
		IDGenerator:  deps.IDGenerator,
		Logger:       deps.Logger,
	}
	getPublication := queries.GetPublicationUseCase{
		Publications: deps.Publications,
		Enricher:     enricher,
		Logger:       deps.Logger,
	}
	listPublications := queries.ListPublicationsUseCase{
		Publications: deps.Publications,
		Enricher:     enricher,
		Logger:       deps.Logger,
	}
	getHistory := queries.GetHistoryUseCase{
		Publications: deps.Publications,
		History:      deps.History,
		Logger:       deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreatePublication: createPublication,
			ChangeStatus:      changeStatus,
			GetPublication:    getPublication,
			ListPublications:  listPublications,
			GetHistory:        getHistory,
			Logger:            deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Publication, authors ports.AuthorGateway, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Publications: store,
		History:      store,
		Authors:      authors,
		Clock:        store,
		IDGenerator:  store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
