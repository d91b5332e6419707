package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Storage struct {
	Driver string `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER" env-default:"memory"`
	Path   string `yaml:"STORAGE_PATH" env:"STORAGE_PATH" env-default:"./data/storefront.db"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds advisory chat messages per client.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"20"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"1m"`
	// TrustProxy keys clients by X-Forwarded-For; enable only behind a proxy
	// that overwrites the header.
	TrustProxy  bool          `yaml:"TRUST_PROXY" env:"TRUST_PROXY" env-default:"false"`
}

type Payment struct {
	Provider         string        `yaml:"PAYMENT_PROVIDER" env:"PAYMENT_PROVIDER" env-default:"simulated"`
	SimulatedLatency time.Duration `yaml:"SIMULATED_LATENCY" env:"SIMULATED_LATENCY" env-default:"1500ms"`
	Timeout          time.Duration `yaml:"PAYMENT_TIMEOUT" env:"PAYMENT_TIMEOUT" env-default:"30s"`
}

type Stripe struct {
	APIKey   string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	Currency string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"usd"`
}

type GenAI struct {
	APIKey   string        `yaml:"API_KEY" env:"API_KEY" env-default:""`
	Model    string        `yaml:"MODEL" env:"GENAI_MODEL" env-default:"gemini-2.5-flash"`
	Timeout  time.Duration `yaml:"TIMEOUT" env:"GENAI_TIMEOUT" env-default:"20s"`
	CacheTTL time.Duration `yaml:"CACHE_TTL" env:"GENAI_CACHE_TTL" env-default:"1h"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@vortex.gg"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Vortex"`
}

type Catalog struct {
	Seed    uint64 `yaml:"CATALOG_SEED" env:"CATALOG_SEED" env-default:"2024"`
	Version int    `yaml:"CATALOG_VERSION" env:"CATALOG_VERSION" env-default:"4"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"vortex-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Storage      Storage      `yaml:"storage"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Payment      Payment      `yaml:"payment"`
	Stripe       Stripe       `yaml:"stripe"`
	GenAI        GenAI        `yaml:"genai"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Catalog      Catalog      `yaml:"catalog"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
