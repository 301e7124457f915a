package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fileshare-api/config"
	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/application/services"
	"fileshare-api/internal/infrastructure/db/postgres"
	fileDB "fileshare-api/internal/infrastructure/db/postgres/file"
	permissionDB "fileshare-api/internal/infrastructure/db/postgres/permission"
	sessionDB "fileshare-api/internal/infrastructure/db/postgres/session"
	userDB "fileshare-api/internal/infrastructure/db/postgres/user"
	"fileshare-api/internal/infrastructure/jwt"
	"fileshare-api/internal/infrastructure/metrics"
	"fileshare-api/internal/infrastructure/mq"
	"fileshare-api/internal/infrastructure/storage"
	"fileshare-api/internal/interface/api/rest"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	disk       *storage.Disk
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(ctx, logger, dbPool); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// upload storage
	disk, err := storage.New(cfg.Storage.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	//rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		disk:       disk,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := userDB.NewRepository(a.db)
	fileRepo := fileDB.NewRepository(a.db)
	permissionRepo := permissionDB.NewRepository(a.db)
	sessionRepo := sessionDB.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(userRepo, sessionRepo, jwtService, a.mq, a.mCounter)
	fileService := services.NewFileService(
		a.disk,
		fileRepo,
		permissionRepo,
		userRepo,
		a.cfg.Storage.MaxUploadBytes,
		a.mq,
		a.mCounter,
	)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService, jwtService)
	rest.NewFileController(a.router, fileService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
