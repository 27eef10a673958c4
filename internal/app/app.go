package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/store-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/store-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/store-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/store-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/store-backend/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/store-backend/internal/repository/minio"
	mongoRepo "github.com/DRSN-tech/store-backend/internal/repository/mongodb"
	mongoConv "github.com/DRSN-tech/store-backend/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/store-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/store-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/clients"
	"github.com/DRSN-tech/store-backend/pkg/closer"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/DRSN-tech/store-backend/pkg/mongodb"
	"github.com/DRSN-tech/store-backend/pkg/token"
	"github.com/DRSN-tech/store-backend/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	topicTimeout    = 10 * time.Second
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer

	// отменяется при остановке, фоновые задачи (очистка MinIO, health) завершаются по нему
	stopCtx context.Context
	stop    context.CancelFunc
}

// NewApp подключается к внешним зависимостям и собирает слои приложения.
// Всё открытое регистрируется в closer и закрывается в обратном порядке.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	stopCtx, stop := context.WithCancel(context.Background())
	a := &App{
		cfg:     cfg,
		logger:  log,
		closer:  closer.NewCloser(0),
		stopCtx: stopCtx,
		stop:    stop,
	}

	if err := a.init(); err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.stop()
		if closeErr := a.closer.Close(shutdownCtx); closeErr != nil {
			log.Warnf("cleanup after failed start: %v", closeErr)
		}
		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	db, err := a.initMongo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	productRepo := mongoRepo.NewProductRepo(db.DB, mongoConv.ProductConverter{})
	orderRepo := mongoRepo.NewOrderRepo(db.DB, mongoConv.OrderConverter{})
	paymentRepo := mongoRepo.NewPaymentRepo(db.DB, mongoConv.PaymentConverter{})
	userRepo := mongoRepo.NewUserRepo(db.DB, mongoConv.UserConverter{})
	reviewRepo := mongoRepo.NewReviewRepo(db.DB, mongoConv.ReviewConverter{})

	var transactor usecase.Transactor = tr.NoTransactor{}
	if a.cfg.Mongo.UseTransactions {
		transactor = tr.NewMongoTransactor(db.Client)
	}

	cacheRepo := a.initCache(ctx)
	producer := a.initProducer()

	imagesInfra, err := a.initImages(ctx)
	if err != nil {
		return err
	}

	tokens := token.NewManager(a.cfg.Auth.Secret, a.cfg.Auth.TokenTTL)

	useCases := v1Http.UseCases{
		Products: usecase.NewProductUC(productRepo, cacheRepo, imagesInfra, a.logger),
		Users:    usecase.NewUserUC(userRepo, tokens, a.logger),
		Orders:   usecase.NewOrderUC(orderRepo, paymentRepo, transactor, producer, a.logger),
		Reviews:  usecase.NewReviewUC(reviewRepo),
	}

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	healthSrv := a.grpcSrv.RegisterServices()
	a.closer.Add("gRPC server", a.grpcSrv.Stop)

	watcher := v1Grpc.NewHealthWatcher(db, healthSrv, a.cfg.Grpc.HealthInterval, a.logger)
	watcher.Start(a.stopCtx)
	a.closer.Add("health watcher", watcher.Stop)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(useCases, tokens, a.cfg.Http.AllowedOrigins)

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http, a.logger)
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	return nil
}

// initMongo ждёт базу столько, сколько занимают все попытки подключения,
// а не общий таймаут старта.
func (a *App) initMongo() (*mongodb.MongoDatabase, error) {
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), mongodb.ConnectBudget(a.cfg.Mongo))
	defer cancelConnect()

	db, err := mongodb.Connect(connectCtx, a.cfg.Mongo, a.logger)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("MongoDB", db.Close)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := mongoRepo.EnsureIndexes(ctx, db.DB); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// initCache возвращает пустой кэш, если Redis выключен или недоступен при старте.
func (a *App) initCache(ctx context.Context) usecase.CacheRepository {
	if !a.cfg.Redis.Enabled {
		a.logger.Infof("product cache disabled")
		return redis.NopCacheRepo{}
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Warnf("redis unavailable, product cache disabled: %v", err)
		_ = redisClient.Close(ctx)
		return redis.NopCacheRepo{}
	}
	a.closer.Add("Redis", redisClient.Close)

	return redis.NewCacheRepo(redisClient, redisConv.ProductConverter{}, a.cfg.Redis, a.logger)
}

func (a *App) initProducer() usecase.EventProducer {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("kafka brokers are not set, order events disabled")
		return kafka.NopProducer{}
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}
	a.closer.Add("Kafka producer", func(context.Context) error {
		return producer.Close()
	})

	return producer
}

// initImages возвращает nil, если бакет не настроен: загрузка изображений тогда отвечает 503.
func (a *App) initImages(ctx context.Context) (usecase.ImagesInfra, error) {
	if !a.cfg.Minio.Enabled() {
		a.logger.Infof("BUCKET_NAME is not set, product images disabled")
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imagesInfra := minioInfra.NewMinioInfrastructure(s3Repo.NewImageRepo(minioClient), a.cfg.Minio, a.logger, a.stopCtx)
	a.closer.Add("MinIO cleanup", imagesInfra.WaitForCleanup)

	return imagesInfra, nil
}

// Run запускает серверы и блокируется до сигнала остановки или падения одного из серверов.
func (a *App) Run() error {
	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.stop()
	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		appErr = errors.Join(appErr, err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
