package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	Kafka          Kafka
	Jobs           Jobs
}

type HTTP struct {
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CorsOrigins     []string      `env:"HTTP_CORS_ORIGINS" envDefault:"*"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

// Kafka is optional: activity events are published only when Brokers is set.
type Kafka struct {
	Brokers       []string `env:"KAFKA_BROKERS" envDefault:""`
	ActivityTopic string   `env:"KAFKA_ACTIVITY_TOPIC" envDefault:"cheque-activity"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Jobs struct {
	AuditEnabled  bool          `env:"JOB_AUDIT_ENABLED" envDefault:"true"`
	AuditInterval time.Duration `env:"JOB_AUDIT_INTERVAL" envDefault:"1h"`
}

// New loads envPath if it exists and parses the environment. Variables without
// a default are required.
func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
