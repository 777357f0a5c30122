package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	BudgetRollover BudgetRollover `mapstructure:",squash"`
	Export         Export         `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Host         string        `mapstructure:"database_host"`
	Port         int           `mapstructure:"database_port"`
	User         string        `mapstructure:"database_user"`
	Password     string        `mapstructure:"database_password"`
	Name         string        `mapstructure:"database_name"`
	SSLMode      string        `mapstructure:"database_sslmode"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Auth define o administrador único; a senha é guardada apenas como hash bcrypt
type Auth struct {
	SecretKey         string        `mapstructure:"secret_key"`
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type BudgetRollover struct {
	CronSchedule string `mapstructure:"budget_rollover_cron"`
	Enabled      bool   `mapstructure:"budget_rollover_enabled"`
}

type Export struct {
	RequestsPerMinute int `mapstructure:"export_requests_per_minute"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")

	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", 5432)
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_NAME", "cloudspend")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "30s")

	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("BUDGET_ROLLOVER_CRON", "0 2 1 * *") // Dia 1 de cada mês às 2h
	viper.SetDefault("BUDGET_ROLLOVER_ENABLED", false)

	viper.SetDefault("EXPORT_REQUESTS_PER_MINUTE", 30)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// BuildDSN monta a URL de conexão do lib/pq escapando usuário e senha
func (d Database) BuildDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func (c *Config) Validate() error {
	var errs []error

	if c.Database.Host == "" || c.Database.Name == "" {
		errs = append(errs, errors.New("DATABASE_HOST and DATABASE_NAME are required"))
	}
	if c.Database.QueryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("DATABASE_QUERY_TIMEOUT must be positive, got %s", c.Database.QueryTimeout))
	}
	if c.Auth.AdminEmail != "" && (c.Auth.SecretKey == "" || c.Auth.AdminPasswordHash == "") {
		errs = append(errs, errors.New("SECRET_KEY and ADMIN_PASSWORD_HASH are required when ADMIN_EMAIL is set"))
	}
	if c.BudgetRollover.Enabled {
		if _, err := cron.ParseStandard(c.BudgetRollover.CronSchedule); err != nil {
			errs = append(errs, fmt.Errorf("invalid BUDGET_ROLLOVER_CRON %q: %w", c.BudgetRollover.CronSchedule, err))
		}
	}
	if c.Export.RequestsPerMinute < 0 {
		errs = append(errs, fmt.Errorf("EXPORT_REQUESTS_PER_MINUTE must not be negative, got %d", c.Export.RequestsPerMinute))
	}

	return errors.Join(errs...)
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
