package main

import (
	"context"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/pkg/config"
	"github.com/gracewaylabs/graceway-admin/pkg/logger"
)

// commandContext lazily bootstraps config and the API client so that help
// and flag errors never touch the environment.
type commandContext struct {
	baseURLFlag *string
	storeFlag   *string

	once   sync.Once
	cfg    *config.Config
	logg   *logger.Logger
	client *apiclient.Client
	err    error
}

func newCommandContext(baseURLFlag, storeFlag *string) *commandContext {
	return &commandContext{
		baseURLFlag: baseURLFlag,
		storeFlag:   storeFlag,
	}
}

func (c *commandContext) ensureClient(ctx context.Context) (*apiclient.Client, error) {
	c.once.Do(func() {
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			c.err = err
			return
		}
		if c.baseURLFlag != nil && strings.TrimSpace(*c.baseURLFlag) != "" {
			cfg.API.BaseURL = strings.TrimSpace(*c.baseURLFlag)
		}
		if c.storeFlag != nil && strings.TrimSpace(*c.storeFlag) != "" {
			cfg.TokenStore.Kind = strings.TrimSpace(*c.storeFlag)
		}

		logg := logger.New(logger.Options{
			ServiceName: "gracectl",
			Level:       logger.ParseLevel(cfg.App.LogLevel),
		})

		storage, err := newTokenStorage(ctx, cfg)
		if err != nil {
			c.err = err
			return
		}

		tokens := apiclient.NewTokenManager(ctx, storage, nil, logg)
		client, err := apiclient.NewClient(cfg.API, tokens, apiclient.WithLogger(logg))
		if err != nil {
			c.err = err
			return
		}

		c.cfg = cfg
		c.logg = logg
		c.client = client
	})
	return c.client, c.err
}

func newTokenStorage(ctx context.Context, cfg *config.Config) (apiclient.TokenStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.TokenStore.Kind)) {
	case config.TokenStoreMemory:
		return apiclient.NewMemoryStorage(), nil
	case config.TokenStoreRedis:
		return apiclient.NewRedisStorage(ctx, cfg.Redis)
	default:
		path := cfg.TokenStore.FilePath
		if path == "" {
			defaultPath, err := apiclient.DefaultTokenFile()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
		return apiclient.NewFileStorage(path)
	}
}
