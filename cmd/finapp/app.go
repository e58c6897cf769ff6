package main

import (
	"log/slog"

	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	redisadapter "github.com/MaxiJeziFlexi/finapp-advisor/internal/adapters/redis"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/adapters/memory"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/advice"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/config"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/metrics"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/orchestrator"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/session"
)

// app bundles the wired collaborators for a command run.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	orch    *orchestrator.Orchestrator
	store   ports.Store
	metrics *metrics.Metrics
	close   func()
}

// loadConfig resolves the config file and log-level flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildApp assembles stores, generator and orchestrator from config.
func buildApp(cfg *config.Config) (*app, error) {
	logger := logging.New(logLevel(cfg.LogLevel))
	m := metrics.New()

	var (
		sessionStore ports.SessionStore
		store        ports.Store
		managerOpts  []session.Option
		closeFn      = func() {}
	)

	if cfg.Redis.Enabled {
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sessionStore = redisadapter.NewSessionStoreFromClient(client,
			redisadapter.WithTTL(cfg.Redis.SessionTTL.Std()))
		store = redisadapter.NewStore(client)
		managerOpts = append(managerOpts, session.WithLocker(redisadapter.NewLocker(client, "finapp:")))
		closeFn = func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", "err", err)
			}
		}
	} else {
		sessionStore = memory.NewSessionStore()
		store = memory.NewStore()
	}

	var generator ports.AdviceGenerator
	if cfg.OpenAI.APIKey != "" {
		genOpts := []advice.GeneratorOption{advice.WithGeneratorLogger(logger)}
		if cfg.OpenAI.Model != "" {
			genOpts = append(genOpts, advice.WithModel(cfg.OpenAI.Model))
		}
		generator = advice.NewOpenAIGenerator(cfg.OpenAI.APIKey, genOpts...)
	} else {
		logger.Info("no OpenAI API key configured, using canned advice")
		generator = advice.NewStaticGenerator()
	}

	managerOpts = append(managerOpts, session.WithLogger(logger))
	sessions := session.NewManager(sessionStore, managerOpts...)

	orch := orchestrator.New(sessions, store, generator,
		orchestrator.WithLogger(logger),
		orchestrator.WithMetrics(m),
		orchestrator.WithLanguage(cfg.Language),
	)

	return &app{
		cfg:     cfg,
		logger:  logger,
		orch:    orch,
		store:   store,
		metrics: m,
		close:   closeFn,
	}, nil
}
