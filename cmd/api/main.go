package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"maleri_backend/internal/auth"
	"maleri_backend/internal/catalog"
	"maleri_backend/internal/conversation"
	"maleri_backend/internal/email"
	"maleri_backend/internal/estimate"
	apphttp "maleri_backend/internal/http"
	"maleri_backend/internal/http/router"
	"maleri_backend/internal/scheduler"
	"maleri_backend/internal/speech"
	"maleri_backend/platform/ai/gemini"
	"maleri_backend/platform/config"
	"maleri_backend/platform/db"
	"maleri_backend/platform/logger"
	"maleri_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var (
		pool      *pgxpool.Pool
		rowSource catalog.RowSource
		health    apphttp.HealthChecker
	)
	if cfg.DatabaseURL != "" {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, cfg)
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")

		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		defer pool.Close()
		log.Info("database connection established")

		rowSource = catalog.NewRepository(pool)
		health = db.NewPoolAdapter(pool)
	} else {
		rowSource = catalog.NewSeedSource(cfg.CatalogSeedPath)
		log.Info("running without database, catalog from seed file", "path", cfg.CatalogSeedPath)
	}

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic("failed to parse redis url: " + err.Error())
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Collaborators
	// ========================================================================

	var suggester catalog.SynonymSuggester
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("failed to initialize gemini client", "error", err)
			panic("failed to initialize gemini client: " + err.Error())
		}
		suggester = client
	} else {
		log.Warn("GEMINI_API_KEY not configured; synonym suggestions disabled")
	}

	var transcriber speech.Transcriber
	if cfg.WhisperModelPath != "" {
		whisperTranscriber, err := speech.NewWhisperTranscriber(cfg.WhisperModelPath)
		if err != nil {
			log.Error("failed to load whisper model", "error", err)
			panic("failed to load whisper model: " + err.Error())
		}
		defer whisperTranscriber.Close()
		transcriber = whisperTranscriber
		log.Info("whisper model loaded", "path", cfg.WhisperModelPath)
	} else {
		log.Warn("WHISPER_MODEL_PATH not configured; audio endpoint disabled")
	}

	var archive *speech.RecordingArchive
	archiveCfg := speech.ArchiveConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucketRecordings,
	}
	if archiveCfg.Enabled() {
		archive, err = speech.NewRecordingArchive(archiveCfg)
		if err != nil {
			log.Error("failed to initialize recording archive", "error", err)
			panic("failed to initialize recording archive: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure recordings bucket", 5, 2*time.Second, func() error {
			return archive.EnsureBucketExists(ctx)
		}); err != nil {
			log.Error("failed to ensure recordings bucket", "error", err)
			panic("failed to ensure recordings bucket: " + err.Error())
		}
	} else {
		log.Warn("MINIO_ENDPOINT not configured; recording archive disabled")
	}

	var sender email.Sender
	if cfg.EmailEnabled {
		sender = email.NewSMTPSender(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
			cfg.EmailFromAddress, cfg.EmailFromName, cfg.EmailRecipient,
		)
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	jobs, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to create job client", "error", err)
		panic("failed to create job client: " + err.Error())
	}
	defer jobs.Close()

	catalogStore := catalog.NewStore()
	catalogModule := catalog.NewModule(rowSource, catalogStore, suggester, jobs, val, log)

	if err := withRetry(ctx, log, "initial catalog load", 5, 2*time.Second, func() error {
		_, err := catalogModule.Service().Reload(ctx, "startup")
		return err
	}); err != nil {
		log.Error("failed to load catalog", "error", err)
		panic("failed to load catalog: " + err.Error())
	}

	pricing := estimate.PricingConfig{
		LaborRate:      cfg.DefaultLaborRate,
		TaskMarkupPct:  cfg.DefaultTaskMarkupPct,
		BatchMarkupPct: cfg.BatchMarkupPct,
	}

	authModule := auth.NewModule(cfg, val, log)
	estimateModule := estimate.NewModule(catalogStore, pricing, val, log)
	conversationModule := conversation.NewModule(
		redisClient, cfg.SessionTTL, catalogStore, pricing,
		transcriber, archive, sender, val, log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: health,
		Modules: []apphttp.Module{
			authModule,
			catalogModule,
			estimateModule,
			conversationModule,
		},
	}

	engine := router.New(app)

	// ========================================================================
	// Background Jobs
	// ========================================================================

	// The refresh worker runs in-process so a reload lands in the same
	// catalog store the HTTP modules read from.
	worker, err := scheduler.NewWorker(cfg, catalogModule.Service(), log)
	if err != nil {
		log.Error("failed to create job worker", "error", err)
		panic("failed to create job worker: " + err.Error())
	}
	periodic, err := scheduler.NewPeriodic(cfg, cfg.CatalogRefreshInterval, log)
	if err != nil {
		log.Error("failed to create periodic scheduler", "error", err)
		panic("failed to create periodic scheduler: " + err.Error())
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		return engine.Run(cfg.HTTPAddr)
	})
	group.Go(func() error {
		worker.Run(groupCtx)
		return nil
	})
	group.Go(func() error {
		periodic.Run(groupCtx)
		return nil
	})

	if err := group.Wait(); err != nil && ctx.Err() == nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("shut down")
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt < attempts {
			delay := baseDelay * time.Duration(attempt)
			log.Warn("retrying", "operation", name, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, lastErr)
}
