package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/mercdex/internal/config"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/mercdex/internal/pkg/clock"
	"github.com/KirkDiggler/mercdex/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/mercdex/internal/redis"
	"github.com/KirkDiggler/mercdex/internal/repositories/mercenary"
	"github.com/KirkDiggler/mercdex/internal/session"
)

const redisDialTimeout = 5 * time.Second

// openRedis connects to the configured redis and checks that it answers
func (a *app) openRedis(ctx context.Context) (redisclient.Client, func(), error) {
	client, err := redisclient.NewClient(a.cfg.RedisAddr, &redisclient.Options{
		DialTimeout: redisDialTimeout,
		MaxRetries:  1,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redisclient.Ping(ctx, client); err != nil {
		cleanup()
		return nil, nil, errors.Wrapf(err, "failed to reach redis at %s", a.cfg.RedisAddr)
	}

	return client, cleanup, nil
}

// openRepository returns the repository for the configured source
func (a *app) openRepository(ctx context.Context) (mercenary.Repository, func(), error) {
	switch a.cfg.Source {
	case config.SourceRedis:
		client, cleanup, err := a.openRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		repo, err := mercenary.NewRedis(&mercenary.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return repo, cleanup, nil
	default:
		repo, err := mercenary.NewFile(a.cfg.FileConfig())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

// openSession wires the catalog orchestrator and starts a session on it
func (a *app) openSession(ctx context.Context) (catalog.Service, *session.Session, func(), error) {
	repo, cleanup, err := a.openRepository(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	svc, err := catalog.NewOrchestrator(&catalog.Config{
		MercenaryRepo: repo,
		IDGenerator:   idgen.NewUUID("session"),
		Clock:         clock.New(),
		Limits:        a.cfg.Limits(),
	})
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	output, err := svc.StartSession(ctx, &catalog.StartSessionInput{})
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	slog.DebugContext(ctx, "dataset loaded", "source", a.cfg.Source, "session_id", output.Session.ID())

	return svc, output.Session, cleanup, nil
}
