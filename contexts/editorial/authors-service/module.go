package authorsservice

import (
	"log/slog"

	httpadapter "editorial/contexts/editorial/authors-service/adapters/http"
	"editorial/contexts/editorial/authors-service/adapters/memory"
	"editorial/contexts/editorial/authors-service/application"
	"editorial/contexts/editorial/authors-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Authors     ports.AuthorRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Authors:     deps.Authors,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Authors:     store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
