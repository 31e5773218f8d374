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

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Threads   Threads   `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Tracking  Tracking  `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Threads struct {
	BaseURL             string        `mapstructure:"threads_base_url"`
	UserID              string        `mapstructure:"threads_user_id"`
	AccessToken         string        `mapstructure:"threads_access_token"`
	HTTPTimeout         time.Duration `mapstructure:"threads_http_timeout"`
	CacheTTL            time.Duration `mapstructure:"threads_cache_ttl"`
	CacheSize           int           `mapstructure:"threads_cache_size"`
	MaxConcurrency      int           `mapstructure:"threads_max_concurrency"`
	TokenRefreshEnabled bool          `mapstructure:"threads_token_refresh_enabled"`
	TokenRefreshCron    string        `mapstructure:"threads_token_refresh_cron"`
	TokenExpiresAt      time.Time     `mapstructure:"-"`
}

// Configured indica se as credenciais da API do Threads foram informadas
func (t Threads) Configured() bool {
	return t.UserID != "" && t.AccessToken != ""
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

// Location retorna o fuso usado para calcular dia e hora locais nos dashboards
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

type Dashboard struct {
	LoadTimeout    time.Duration `mapstructure:"dashboard_load_timeout"`
	RefreshCron    string        `mapstructure:"dashboard_refresh_cron"`
	RefreshEnabled bool          `mapstructure:"dashboard_refresh_enabled"`
}

type Tracking struct {
	WriteTimeout time.Duration `mapstructure:"tracking_write_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/landing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("THREADS_BASE_URL", "https://graph.threads.net/v1.0")
	viper.SetDefault("THREADS_USER_ID", "")
	viper.SetDefault("THREADS_ACCESS_TOKEN", "")
	viper.SetDefault("THREADS_HTTP_TIMEOUT", "15s")
	viper.SetDefault("THREADS_CACHE_TTL", "5m")
	viper.SetDefault("THREADS_CACHE_SIZE", 64)
	viper.SetDefault("THREADS_MAX_CONCURRENCY", 5)
	viper.SetDefault("THREADS_TOKEN_REFRESH_ENABLED", false)
	viper.SetDefault("THREADS_TOKEN_REFRESH_CRON", "0 4 * * *") // Todos os dias às 4h da manhã

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("APP_TIMEZONE", "UTC")

	viper.SetDefault("DASHBOARD_LOAD_TIMEOUT", "20s")
	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", true)

	viper.SetDefault("TRACKING_WRITE_TIMEOUT", "5s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

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

	return decode(viper.AllSettings())
}

// decode converte as chaves carregadas pelo viper na struct de configuração
func decode(settings map[string]any) (*Config, error) {
	config := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           config,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, err
	}

	config.Threads.BaseURL = strings.TrimRight(config.Threads.BaseURL, "/")

	origins := make([]string, 0, len(config.Server.AllowedOrigins))
	for _, origin := range config.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	config.Server.AllowedOrigins = origins

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
