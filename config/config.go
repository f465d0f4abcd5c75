package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — настройки HTTP-сервера.
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Metrics — отдельный адрес для Prometheus-метрик.
type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

// Tracing — OpenTelemetry (выключен по умолчанию).
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"cuadros-reserve" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Odoo — доступ к авторитетному хранилищу заказов (JSON-RPC).
type Odoo struct {
	BaseURL  string        `default:"http://odoo:8069" envconfig:"BASE_URL"`
	DB       string        `default:"cuadros" envconfig:"DB"`
	Username string        `default:"" envconfig:"USERNAME"`
	APIKey   string        `default:"" envconfig:"API_KEY"`
	Timeout  time.Duration `default:"5s" envconfig:"TIMEOUT"`
}

// Limits — пределы admission-контроля.
type Limits struct {
	MaxHoldersPerProduct int `default:"3" envconfig:"MAX_HOLDERS_PER_PRODUCT"`
	MaxProductsPerOwner  int `default:"10" envconfig:"MAX_PRODUCTS_PER_OWNER"`
}

// Cache — ёмкость и TTL одного кэша.
type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"30s" envconfig:"TTL"`
}

// Kafka — consumer событий подтверждения продаж.
type Kafka struct {
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"sale-confirmations" envconfig:"TOPIC"`
	GroupID        string        `default:"cuadros-reserve" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

// Logger — режим логгера.
type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Config — вся конфигурация сервиса.
type Config struct {
	HTTP         HTTP    `envconfig:"HTTP"`
	Metrics      Metrics `envconfig:"METRICS"`
	Tracing      Tracing `envconfig:"TRACING"`
	Odoo         Odoo    `envconfig:"ODOO"`
	Limits       Limits  `envconfig:"LIMITS"`
	ProductCache Cache   `envconfig:"PRODUCT_CACHE"`
	CartCache    Cache   `envconfig:"CART_CACHE"`
	Kafka        Kafka   `envconfig:"KAFKA"`
	Logger       Logger  `envconfig:"LOGGER"`
}

// Load — конфигурация с боевым префиксом RESERVE.
func Load() (Config, error) { return LoadWithPrefix("RESERVE") }

// LoadWithPrefix — загрузка с произвольным префиксом (удобно в тестах,
// чтобы не пересекаться с окружением процесса).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
