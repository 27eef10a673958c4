package mongodb

import (
	"context"
	"time"

	"github.com/DRSN-tech/store-backend/internal/cfg"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/jitter"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	retryBase = 500 * time.Millisecond
	retryMax  = 10 * time.Second
)

// MongoDatabase инкапсулирует клиент MongoDB и рабочую базу данных.
type MongoDatabase struct {
	Client *mongo.Client
	DB     *mongo.Database
	cfg    *cfg.MongoCfg
}

func NewMongoDatabase(client *mongo.Client, cfg *cfg.MongoCfg) *MongoDatabase {
	return &MongoDatabase{
		Client: client,
		DB:     client.Database(cfg.DBName),
		cfg:    cfg,
	}
}

// Connect подключается к MongoDB, повторяя попытки с экспоненциальной задержкой.
// После cfg.ConnectRetries неудач возвращает последнюю ошибку.
// Контекст должен покрывать все попытки, см. ConnectBudget.
func Connect(ctx context.Context, cfg *cfg.MongoCfg, logger logger.Logger) (*MongoDatabase, error) {
	return connect(ctx, cfg, logger, dial)
}

// ConnectBudget — сколько времени может занять Connect со всеми повторами.
func ConnectBudget(cfg *cfg.MongoCfg) time.Duration {
	return time.Duration(cfg.ConnectRetries) * (cfg.ConnectTimeout + retryMax)
}

// dialFunc — одна попытка подключения.
type dialFunc func(ctx context.Context, cfg *cfg.MongoCfg) (*mongo.Client, error)

func connect(ctx context.Context, cfg *cfg.MongoCfg, logger logger.Logger, dial dialFunc) (*MongoDatabase, error) {
	const op = "MongoDatabase.Connect"

	var client *mongo.Client
	err := jitter.Retry(ctx, cfg.ConnectRetries, retryBase, retryMax, func(attempt int) error {
		c, err := dial(ctx, cfg)
		if err != nil {
			logger.Warnf("mongo connect attempt %d/%d failed: %v", attempt+1, cfg.ConnectRetries, err)
			return err
		}

		client = c
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	logger.Infof("connected to mongo, database %s", cfg.DBName)
	return NewMongoDatabase(client, cfg), nil
}

func dial(ctx context.Context, cfg *cfg.MongoCfg) (*mongo.Client, error) {
	c, err := mongo.Connect(ctx, clientOptions(cfg))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := c.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}

	return c, nil
}

func clientOptions(cfg *cfg.MongoCfg) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	if cfg.User != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	return opts
}

func (db *MongoDatabase) Ping(ctx context.Context) error {
	const op = "MongoDatabase.Ping"
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает соединения клиента.
func (db *MongoDatabase) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}

	return db.Client.Disconnect(ctx)
}
