//go:build wireinject
// +build wireinject

package wire

import (
	"entity-config-server/cmd/config"
	"entity-config-server/internal/entity_config/httpapi"
	"entity-config-server/internal/entity_config/persistence"
	"entity-config-server/internal/entity_config/usecases"
	"entity-config-server/internal/entity_config/validation"

	"github.com/google/wire"
)

var SchemaStoreSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	provideConsumerFactory,
	provideCache,
	persistence.NewEntitySchemaRepository,
	provideCachedEntitySchemaRepository,
	wire.Bind(new(usecases.EntitySchemaRepository), new(*persistence.CachedEntitySchemaRepository)),
)

func InitializeApplication(cfg config.AppConfig) (*Application, error) {
	wire.Build(
		provideRuleCatalog,
		provideClock,
		SchemaStoreSet,
		provideDraftRepository,
		wire.Bind(new(usecases.DraftRepository), new(*persistence.CacheDraftRepository)),
		validation.NewEngine,
		usecases.NewEntitySchemaService,
		wire.Bind(new(usecases.EntitySchemaService), new(*usecases.SimpleEntitySchemaService)),
		usecases.NewDraftService,
		wire.Bind(new(usecases.DraftService), new(*usecases.SimpleDraftService)),
		httpapi.NewRuleCatalogController,
		httpapi.NewEntitySchemaController,
		httpapi.NewDraftController,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
