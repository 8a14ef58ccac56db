package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pronet/internal/config"
	"pronet/internal/domains/connection"
	connectionService "pronet/internal/domains/connection/service"
	"pronet/internal/domains/post"
	postService "pronet/internal/domains/post/service"
	"pronet/internal/domains/user"
	userService "pronet/internal/domains/user/service"
	"pronet/internal/infrastructure/persistence"
	"pronet/internal/session"
)

// Container is the root of the dependency graph, built once at startup
// and threaded through the application - no ambient singletons.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Persistence gateway + coordinator (depend on config)
// 3. Stores, restored from the loaded or seeded snapshot
// 4. Session
type Container struct {
	Config      *config.Config
	Gateway     persistence.Gateway
	Coordinator *persistence.Coordinator

	Users       user.Service
	Connections connection.Service
	Posts       post.Service

	Session *session.Session
}

// New builds and wires the whole dependency graph.
func New(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	gw, err := newGateway(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage (%s): %w", cfg.Storage.Driver, err)
	}
	c.Gateway = gw
	c.Coordinator = persistence.NewCoordinator(gw)

	snapshot, err := gw.LoadAll(ctx)
	seeded := false
	switch {
	case errors.Is(err, persistence.ErrNoData):
		log.Info().Msg("no persisted data found, seeding demo dataset")
		snapshot = persistence.SeedSnapshot(time.Now())
		seeded = true
	case err != nil:
		gw.Close()
		return nil, fmt.Errorf("load data: %w", err)
	}

	directory := userService.NewDirectory(c.Coordinator, snapshot.Users)
	graph := connectionService.NewGraph(c.Coordinator, directory, snapshot.Connections)
	store := postService.NewStore(c.Coordinator, directory, snapshot.Posts)

	c.Coordinator.Attach(directory, graph, store)

	c.Users = directory
	c.Connections = graph
	c.Posts = store
	c.Session = session.New()

	if seeded {
		// Flush the seed so the next run loads instead of reseeding.
		if err := c.Coordinator.Save(ctx); err != nil {
			log.Warn().Err(err).Msg("could not persist seed dataset")
		}
	}

	log.Info().
		Str("driver", cfg.Storage.Driver).
		Int("users", len(snapshot.Users)).
		Int("posts", len(snapshot.Posts)).
		Msg("container initialized")

	return c, nil
}

// newGateway picks the persistence backend from config.
func newGateway(ctx context.Context, cfg *config.Config) (persistence.Gateway, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		return persistence.NewRedisGateway(ctx, cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	case config.DriverPostgres:
		return persistence.NewPostgresGateway(ctx, persistence.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.Database,
			SSLMode:  cfg.Database.SSLMode,
		})
	default:
		return persistence.NewFileGateway(cfg.Storage.DataDir)
	}
}

// Cleanup releases infrastructure resources.
func (c *Container) Cleanup() {
	if c.Gateway != nil {
		if err := c.Gateway.Close(); err != nil {
			log.Warn().Err(err).Msg("closing storage gateway")
		}
	}
}
