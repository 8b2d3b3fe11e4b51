package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/teamkits/go-backend/internal/cfg"
	v1Http "github.com/teamkits/go-backend/internal/delivery/v1/http"
	"github.com/teamkits/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/teamkits/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/teamkits/go-backend/internal/repository/minio"
	"github.com/teamkits/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/teamkits/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/teamkits/go-backend/internal/repository/redis"
	redisConv "github.com/teamkits/go-backend/internal/repository/redis/converter/generated"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/clients"
	"github.com/teamkits/go-backend/pkg/closer"
	"github.com/teamkits/go-backend/pkg/e"
	"github.com/teamkits/go-backend/pkg/logger"
	"github.com/teamkits/go-backend/pkg/postgres"
)

// App собирает все зависимости и управляет жизненным циклом сервиса.
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	httpSrv    *v1Http.Server
	worker     *kafka.OutboxWorker
	filesInfra *minioInfra.MinioInfrastructure
	closer     *closer.Closer

	// отменяется при завершении приложения, ограничивает фоновые задачи
	appCtx    context.Context
	appCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	appCtx, appCancel := context.WithCancel(context.Background())
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	customerConv := pgdbConv.NewCustomerConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	itemConv := pgdbConv.NewOrderItemConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewOrderInfoConverterImpl()

	customerRepo := pgdb.NewCustomerRepo(db.Pool, customerConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv, itemConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	designFileRepo := s3Repo.NewDesignFileRepo(minioClient, cfg.Minio)
	filesInfra := minioInfra.NewMinioInfrastructure(designFileRepo, cfg.Minio, log, appCtx)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		appCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	orderUC := usecase.NewOrderUC(
		orderRepo,
		customerRepo,
		db.Pool,
		filesInfra,
		outboxRepo,
		cacheRepo,
		log,
	)

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log, cfg.Http)
	router.Init(orderUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:        cfg,
		logger:     log,
		httpSrv:    httpSrv,
		worker:     worker,
		filesInfra: filesInfra,
		closer:     cl,
		appCtx:     appCtx,
		appCancel:  appCancel,
	}, nil
}

// Run запускает HTTP-сервер и outbox-воркер, блокируется до сигнала
// завершения или фатальной ошибки сервера, после чего закрывает ресурсы.
func (a *App) Run() error {
	a.worker.Start(a.appCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.stop()

	return appErr
}

func (a *App) stop() {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	a.worker.Stop()
	a.logger.Infof("Outbox worker stopped")

	// Даём фоновым компенсациям MinIO завершиться до обрыва appCtx
	if err := a.filesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	a.appCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Resource close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
