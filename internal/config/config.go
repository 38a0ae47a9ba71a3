package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Orders Orders `validate:"required"`

	Payments Payments `validate:"required"`

	Mpesa Mpesa `validate:"required"`

	Redis Redis

	Admin Admin
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// Топик событий заказов и платежей
	EventsTopic string `validate:"required"`
	// Топик записей трекинга от службы доставки
	TrackingTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Driver   string `validate:"required,oneof=postgres pgx"`
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	PoolSize        int           `validate:"gte=1"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AcquireAttempts int           `validate:"gte=1"`
	AcquireDelay    time.Duration `validate:"gte=0"`
	AcquireTimeout  time.Duration `validate:"gt=0"`
}

type Orders struct {
	NumberAttempts int    `validate:"gte=1"`
	Timezone       string `validate:"required,timezone"`
	// Префикс URL картинок товаров
	UploadsURL string `validate:"required"`
}

type Payments struct {
	// memory - сессии живут в процессе, redis - переживают рестарт
	Store      string        `validate:"required,oneof=memory redis"`
	SessionTTL time.Duration `validate:"gt=0"`
}

type Mpesa struct {
	BaseURL        string        `validate:"required,url"`
	ConsumerKey    string        `validate:"required"`
	ConsumerSecret string        `validate:"required"`
	ShortCode      string        `validate:"required,numeric"`
	PassKey        string        `validate:"required"`
	CallbackURL    string        `validate:"required,url"`
	Timeout        time.Duration `validate:"gt=0"`
}

type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Admin struct {
	// Пустой секрет отключает проверку токена на админских ручках
	JWTSecret string
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:       env("KAFKA_GROUP_ID", "storefront"),
			EventsTopic:   env("KAFKA_EVENTS_TOPIC", "storefront-events"),
			TrackingTopic: env("KAFKA_TRACKING_TOPIC", "order-tracking"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Driver:   env("POSTGRES_DRIVER", "postgres"),
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			PoolSize:        envInt("POSTGRES_POOL_SIZE", 5),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AcquireAttempts: envInt("POSTGRES_ACQUIRE_ATTEMPTS", 3),
			AcquireDelay:    envDuration("POSTGRES_ACQUIRE_DELAY", 2*time.Second),
			AcquireTimeout:  envDuration("POSTGRES_ACQUIRE_TIMEOUT", 5*time.Second),
		},

		Orders: Orders{
			NumberAttempts: envInt("ORDER_NUMBER_ATTEMPTS", 5),
			Timezone:       env("ORDERS_TIMEZONE", "Africa/Nairobi"),
			UploadsURL:     env("STATIC_UPLOADS_URL", "/static/uploads/"),
		},

		Payments: Payments{
			Store:      env("PAYMENT_SESSION_STORE", "memory"),
			SessionTTL: envDuration("PAYMENT_SESSION_TTL", 24*time.Hour),
		},

		Mpesa: Mpesa{
			BaseURL:        env("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"),
			ConsumerKey:    env("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: env("MPESA_CONSUMER_SECRET", ""),
			ShortCode:      env("MPESA_SHORTCODE", "174379"),
			PassKey:        env("MPESA_PASSKEY", ""),
			CallbackURL:    env("MPESA_CALLBACK_URL", ""),
			Timeout:        envDuration("MPESA_TIMEOUT", 15*time.Second),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Admin: Admin{
			JWTSecret: env("ADMIN_JWT_SECRET", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
