package wire

import (
	"fmt"

	"entity-config-server/internal/entity_config/httpapi"
	"entity-config-server/internal/entity_config/persistence"
	"entity-config-server/internal/infra/httpserver"
	"entity-config-server/internal/infra/pubsub"
)

// Application is the wired server: its HTTP controllers plus the pieces that
// need starting once the process is up.
type Application struct {
	RuleCatalogController  *httpapi.RuleCatalogController
	EntitySchemaController *httpapi.EntitySchemaController
	DraftController        *httpapi.DraftController
	SchemaCache            *persistence.CachedEntitySchemaRepository
	ConsumerFactory        pubsub.ConsumerFactory
}

func (a *Application) Controllers() []httpserver.Controller {
	return []httpserver.Controller{
		a.RuleCatalogController,
		a.EntitySchemaController,
		a.DraftController,
	}
}

// Start subscribes the schema read cache to schema-saved events so that
// writes made by other instances evict local entries.
func (a *Application) Start() error {
	if err := a.SchemaCache.Subscribe(a.ConsumerFactory); err != nil {
		return fmt.Errorf("starting schema cache: %w", err)
	}
	return nil
}
