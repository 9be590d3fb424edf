package registrarservice

import (
	"log/slog"

	httpadapter "campus/contexts/academics/registrar-service/adapters/http"
	"campus/contexts/academics/registrar-service/adapters/memory"
	"campus/contexts/academics/registrar-service/application"
	"campus/contexts/academics/registrar-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   ports.Store
}

type Dependencies struct {
	Store  ports.Store
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Identity: application.IdentityService{Repo: deps.Store, Logger: deps.Logger},
			Catalog:  application.CatalogService{Repo: deps.Store, Logger: deps.Logger},
			Ledger:   application.LedgerService{Repo: deps.Store, Logger: deps.Logger},
			Logger:   deps.Logger,
		},
		Store: deps.Store,
	}
}

// NewInMemoryModule wires the default process-lifetime backend. It is the
// production default and the harness used by every contract test.
func NewInMemoryModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Store:  memory.NewStore(),
		Logger: logger,
	})
}
