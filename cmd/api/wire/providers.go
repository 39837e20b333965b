package wire

import (
	"fmt"

	"entity-config-server/cmd/config"
	"entity-config-server/internal/entity_config/domain"
	"entity-config-server/internal/entity_config/persistence"
	"entity-config-server/internal/infra/cache"
	"entity-config-server/internal/infra/pubsub"
	"entity-config-server/internal/infra/sql"
	"entity-config-server/internal/infra/utils"
)

func provideRuleCatalog() *domain.RuleCatalog {
	return domain.DefaultRuleCatalog()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverPostgres:
		orm, err := sql.NewPosgreORM(sql.PostgresOptions{
			DSN:           cfg.Database.DSN,
			Timeout:       cfg.Database.Timeout,
			AutoMigration: cfg.Database.AutoMigration,
		})
		if err != nil {
			return nil, err
		}
		return orm, nil
	case config.DatabaseDriverSQLite, "":
		orm, err := sql.NewMemoryORM(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		return orm, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:   cfg.General.Environment,
		KafkaBrokers:  cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.Group,
	})
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB
		c, err := cache.NewRedisCache(redisConfig)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.CacheBackendMemory, "":
		c, err := cache.New(nil)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func provideClock(cfg config.AppConfig) (utils.Clock, error) {
	return utils.NewClock(cfg.General.Timezone)
}

func provideCachedEntitySchemaRepository(repository *persistence.SimpleEntitySchemaRepository, c cache.Cache, cfg config.AppConfig) *persistence.CachedEntitySchemaRepository {
	return persistence.NewCachedEntitySchemaRepository(repository, c, cfg.Cache.SchemaTTL)
}

func provideDraftRepository(c cache.Cache, cfg config.AppConfig) (*persistence.CacheDraftRepository, error) {
	repositoryConfig := persistence.DefaultCacheDraftRepositoryConfig()
	repositoryConfig.Cache = c
	if cfg.Cache.DraftTTL > 0 {
		repositoryConfig.TTL = cfg.Cache.DraftTTL
	}
	return persistence.NewCacheDraftRepository(repositoryConfig)
}
