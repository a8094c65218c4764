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
	Ads          Ads          `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Narrator     Narrator     `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	CORS         CORS         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Ads configura o provedor de métricas de anúncios
type Ads struct {
	BaseURL     string        `mapstructure:"ads_base_url"`
	Version     string        `mapstructure:"ads_version"`
	URL         string        `mapstructure:"-"`
	AccessToken string        `mapstructure:"ads_access_token"`
	CacheTTL    time.Duration `mapstructure:"ads_cache_ttl"`
}

// Analytics configura o provedor de web analytics (GA4)
type Analytics struct {
	BaseURL     string        `mapstructure:"analytics_base_url"`
	AccessToken string        `mapstructure:"analytics_access_token"`
	CacheTTL    time.Duration `mapstructure:"analytics_cache_ttl"`
}

type Auth struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
}

// Narrator configura a geração opcional de narrativas via AWS Bedrock
type Narrator struct {
	Enabled     bool          `mapstructure:"narrator_enabled"`
	Region      string        `mapstructure:"narrator_aws_region"`
	ModelID     string        `mapstructure:"narrator_model_id"`
	MaxTokens   int           `mapstructure:"narrator_max_tokens"`
	CacheTTL    time.Duration `mapstructure:"narrator_cache_ttl"`
	HourlyLimit int           `mapstructure:"narrator_hourly_limit"`
	Timeout     time.Duration `mapstructure:"narrator_timeout"`
}

// SnapshotSync configura o job diário de fotografia de métricas
type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	LookbackDays        int    `mapstructure:"snapshot_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/intelligence")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADS_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("ADS_VERSION", "v22.0")
	viper.SetDefault("ADS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("ADS_CACHE_TTL", "5m")

	viper.SetDefault("ANALYTICS_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("ANALYTICS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("ANALYTICS_CACHE_TTL", "5m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("NARRATOR_ENABLED", false)
	viper.SetDefault("NARRATOR_AWS_REGION", "us-east-1")
	viper.SetDefault("NARRATOR_MODEL_ID", "anthropic.claude-3-sonnet-20240229-v1:0")
	viper.SetDefault("NARRATOR_MAX_TOKENS", 1500)
	viper.SetDefault("NARRATOR_CACHE_TTL", "15m")
	viper.SetDefault("NARRATOR_HOURLY_LIMIT", 10)
	viper.SetDefault("NARRATOR_TIMEOUT", "30s")

	// Defaults do job diário de fotografia de métricas
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_LOOKBACK_DAYS", 1)         // Fotografa o dia anterior
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 contas em paralelo
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Ads.URL = fmt.Sprintf("%s/%s", config.Ads.BaseURL, config.Ads.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Carrega o arquivo .env procurando nas localizações usuais do projeto
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
