package components

import (
	"shareit/internal/infra/uow"

	"go.uber.org/fx"
)

// Write repositories are bound per transaction inside the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
