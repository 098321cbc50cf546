package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	SSLMode      string `mapstructure:"database_sslmode"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Analytics struct {
	Locale string `mapstructure:"analytics_locale"`
}

type Cache struct {
	Driver   string        `mapstructure:"analytics_cache_driver"`
	TTL      time.Duration `mapstructure:"analytics_cache_ttl"`
	RedisURL string        `mapstructure:"redis_url"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

// Location devolve o fuso configurado, UTC quando inválido
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", a.Timezone)
		return time.UTC
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200,http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/parking")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("ANALYTICS_LOCALE", "es")

	viper.SetDefault("ANALYTICS_CACHE_DRIVER", "memory") // redis, memory ou none
	viper.SetDefault("ANALYTICS_CACHE_TTL", "60s")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.SetDefault("SNAPSHOT_CRON", "0 2 * * *")    // Todos os dias às 2h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false) // Habilitar snapshots periódicos

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

func buildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
	if db.SSLMode != "" {
		dsn += "?sslmode=" + db.SSLMode
	}
	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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
