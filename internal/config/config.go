package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Store     Store     `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	CORS      CORS      `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
	Digest    Digest    `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Store struct {
	Driver         string `mapstructure:"store_driver"`
	SeedSampleData bool   `mapstructure:"seed_sample_data"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
}

type Digest struct {
	CronSchedule string `mapstructure:"digest_cron"`
	Enabled      bool   `mapstructure:"digest_enabled"`
}

type Dashboard struct {
	APIURL      string        `mapstructure:"dashboard_api_url"`
	HTTPTimeout time.Duration `mapstructure:"dashboard_http_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("STORE_DRIVER", StoreMemory)
	viper.SetDefault("SEED_SAMPLE_DATA", true)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sdr_metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Limite aplicado apenas às rotas de escrita
	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	viper.SetDefault("DIGEST_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DIGEST_ENABLED", true)

	viper.SetDefault("DASHBOARD_API_URL", "http://localhost:5000")
	viper.SetDefault("DASHBOARD_HTTP_TIMEOUT", "10s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case "":
		c.Store.Driver = StoreMemory
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("config: store driver inválido: %q", c.Store.Driver)
	}

	origins := make([]string, 0, len(c.CORS.AllowedOrigins))
	for _, origin := range c.CORS.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.CORS.AllowedOrigins = origins

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
	if c.Database.SSLMode != "" {
		c.Database.DSN = fmt.Sprintf("%s?sslmode=%s", c.Database.DSN, c.Database.SSLMode)
	}

	return nil
}

// Address retorna host:port para o http.Server
func (s Server) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
