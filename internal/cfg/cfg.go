package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http  *HTTPConfig
	Grpc  *GRPCConfig
	Mongo *MongoCfg
	Auth  *AuthCfg
	Redis *RedisCfg
	Kafka *KafkaCfg
	Minio *MinIOCfg
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type GRPCConfig struct {
	Port           string
	NetworkMode    string
	HealthInterval time.Duration
}

type MongoCfg struct {
	URI             string
	User            string
	Password        string
	DBName          string
	ConnectTimeout  time.Duration
	ConnectRetries  int
	UseTransactions bool
}

type AuthCfg struct {
	Secret   string
	TokenTTL time.Duration
}

type RedisCfg struct {
	Enabled     bool
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	ProductTTL  time.Duration
}

// KafkaCfg: пустой Brokers отключает публикацию событий заказов.
type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

func (k *KafkaCfg) Enabled() bool {
	return len(k.Brokers) > 0
}

// MinIOCfg: пустой BucketName отключает загрузку изображений товаров.
type MinIOCfg struct {
	MinioEndpoint     string
	BucketName        string
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PublicURL         string // базовый URL, по которому объекты доступны клиентам
}

func (m *MinIOCfg) Enabled() bool {
	return m.BucketName != ""
}

// Load загружает конфигурацию из переменных окружения и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	grpc, err := loadGRPCConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	mongo, err := loadMongoCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	auth, err := loadAuthCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:  http,
		Grpc:  grpc,
		Mongo: mongo,
		Auth:  auth,
		Redis: redis,
		Kafka: kafka,
		Minio: minio,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "5000"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
		defaultOrigins      = "*"
	)

	port := getEnvOrDefault("PORT", getEnvOrDefault("HTTP_PORT", defaultPort))

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:           port,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultOrigins)),
	}, nil
}

func loadGRPCConfig(log logger.Logger) (*GRPCConfig, error) {
	const (
		defaultPort           = "8091"
		defaultNetworkMode    = "tcp"
		defaultHealthInterval = 15 * time.Second
	)

	interval, err := parseDurationEnv("HEALTH_INTERVAL", defaultHealthInterval)
	if err != nil {
		log.Errorf(err, "invalid HEALTH_INTERVAL")
		return nil, err
	}

	return &GRPCConfig{
		Port:           getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode:    getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
		HealthInterval: interval,
	}, nil
}

func loadMongoCfg(log logger.Logger) (*MongoCfg, error) {
	const (
		defaultURI             = "mongodb://localhost:27017"
		defaultDBName          = "carpenco_store"
		defaultConnectTimeout  = 10 * time.Second
		defaultConnectRetries  = 5
		defaultUseTransactions = true
	)

	connectTimeout, err := parseDurationEnv("MONGO_CONNECT_TIMEOUT", defaultConnectTimeout)
	if err != nil {
		log.Errorf(err, "invalid MONGO_CONNECT_TIMEOUT")
		return nil, err
	}

	retries, err := parseIntEnv("MONGO_CONNECT_RETRIES", defaultConnectRetries)
	if err != nil {
		log.Errorf(err, "invalid MONGO_CONNECT_RETRIES")
		return nil, err
	}
	if retries < 1 {
		err := e.Wrap(fmt.Sprintf("MONGO_CONNECT_RETRIES=%d, must be at least 1", retries), e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid MONGO_CONNECT_RETRIES")
		return nil, err
	}

	useTx, err := parseBoolEnv("MONGO_USE_TRANSACTIONS", defaultUseTransactions)
	if err != nil {
		log.Errorf(err, "invalid MONGO_USE_TRANSACTIONS")
		return nil, err
	}

	return &MongoCfg{
		URI:             getEnvOrDefault("MONGO_URI", defaultURI),
		User:            getEnv("DB_USER"),
		Password:        getEnv("DB_PASS"),
		DBName:          getEnvOrDefault("DB_NAME", defaultDBName),
		ConnectTimeout:  connectTimeout,
		ConnectRetries:  retries,
		UseTransactions: useTx,
	}, nil
}

func loadAuthCfg(log logger.Logger) (*AuthCfg, error) {
	const defaultTokenTTL = 24 * time.Hour

	secret := getEnv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		err := e.Wrap("ACCESS_TOKEN_SECRET", e.ErrMissingEnvVariable)
		log.Errorf(err, "missing ACCESS_TOKEN_SECRET")
		return nil, err
	}

	ttl, err := parseDurationEnv("ACCESS_TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		log.Errorf(err, "invalid ACCESS_TOKEN_TTL")
		return nil, err
	}

	return &AuthCfg{Secret: secret, TokenTTL: ttl}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultEnabled      = true
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultProductTTL   = 3 * time.Minute
	)

	enabled, err := parseBoolEnv("CACHE_ENABLED", defaultEnabled)
	if err != nil {
		log.Errorf(err, "invalid CACHE_ENABLED")
		return nil, err
	}

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	productTTL, err := parseDurationEnv("PRODUCT_TTL", defaultProductTTL)
	if err != nil {
		log.Errorf(err, "invalid PRODUCT_TTL")
		return nil, err
	}

	return &RedisCfg{
		Enabled:     enabled,
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     max(readTimeout, writeTimeout),
		ProductTTL:  productTTL,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "order-events"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           splitList(getEnv("KAFKA_BROKERS")),
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := parseBoolEnv("MINIO_USE_SSL", defaultUseSSL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	endpoint := getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint)
	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &MinIOCfg{
		MinioEndpoint:     endpoint,
		BucketName:        getEnv("BUCKET_NAME"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicURL:         strings.TrimRight(getEnvOrDefault("MINIO_PUBLIC_URL", fmt.Sprintf("%s://%s", scheme, endpoint)), "/"),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return b, nil
}

// splitList разбивает строку через запятую, отбрасывая пустые элементы.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
