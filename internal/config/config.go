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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Instagram     Instagram     `mapstructure:",squash"`
	InstagramSync InstagramSync `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
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

type Auth struct {
	HookSecret           string        `mapstructure:"auth_hook_secret"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
	RequireVerifiedEmail bool          `mapstructure:"auth_require_verified_email"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Instagram struct {
	GraphURL            string    `mapstructure:"instagram_graph_url"`
	GraphVersion        string    `mapstructure:"instagram_graph_version"`
	FacebookGraphURL    string    `mapstructure:"facebook_graph_url"`
	FacebookVersion     string    `mapstructure:"facebook_graph_version"`
	AccessToken         string    `mapstructure:"instagram_access_token"`
	Platform            string    `mapstructure:"instagram_platform"`
	PlaceholderImageURL string    `mapstructure:"instagram_placeholder_image_url"`
	MediaLimit          int       `mapstructure:"instagram_media_limit"`
	TopN                int       `mapstructure:"instagram_top_n"`
	TokenExpiresAt      time.Time `mapstructure:"-"`
}

type InstagramSync struct {
	CronSchedule        string   `mapstructure:"instagram_sync_cron"`
	Enabled             bool     `mapstructure:"instagram_sync_enabled"`
	ProfileIDs          []string `mapstructure:"instagram_sync_profile_ids"`
	ServiceToken        string   `mapstructure:"instagram_sync_service_token"`
	MaxConcurrentJobs   int      `mapstructure:"instagram_sync_max_concurrent_jobs"`
	RequestDelaySeconds int      `mapstructure:"instagram_sync_request_delay_seconds"`
	TokenRefreshEnabled bool     `mapstructure:"instagram_token_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencer_hub?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_HOOK_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_REQUIRE_VERIFIED_EMAIL", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.instagram.com")
	viper.SetDefault("INSTAGRAM_GRAPH_VERSION", "v24.0")
	viper.SetDefault("FACEBOOK_GRAPH_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_GRAPH_VERSION", "v24.0")
	viper.SetDefault("INSTAGRAM_ACCESS_TOKEN", "")
	viper.SetDefault("INSTAGRAM_PLATFORM", "instagram")
	viper.SetDefault("INSTAGRAM_PLACEHOLDER_IMAGE_URL", "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y")
	viper.SetDefault("INSTAGRAM_MEDIA_LIMIT", 25)
	viper.SetDefault("INSTAGRAM_TOP_N", 5)

	// Sincronização agendada com o Instagram
	viper.SetDefault("INSTAGRAM_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("INSTAGRAM_SYNC_ENABLED", false)
	viper.SetDefault("INSTAGRAM_SYNC_PROFILE_IDS", "")
	viper.SetDefault("INSTAGRAM_SYNC_SERVICE_TOKEN", "")
	viper.SetDefault("INSTAGRAM_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("INSTAGRAM_SYNC_REQUEST_DELAY_SECONDS", 1)
	viper.SetDefault("INSTAGRAM_TOKEN_REFRESH_ENABLED", false)

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

	config.normalize()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// normalize aplica limites mínimos aos valores numéricos e remove entradas vazias das listas
func (c *Config) normalize() {
	if c.Instagram.MediaLimit <= 0 {
		c.Instagram.MediaLimit = 25
	}
	if c.Instagram.TopN <= 0 {
		c.Instagram.TopN = 5
	}
	if c.InstagramSync.MaxConcurrentJobs <= 0 {
		c.InstagramSync.MaxConcurrentJobs = 1
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	c.InstagramSync.ProfileIDs = compact(c.InstagramSync.ProfileIDs)
	c.Cors.AllowedOrigins = compact(c.Cors.AllowedOrigins)
}

// InstagramURL retorna a URL base versionada do graph.instagram.com
func (c *Config) InstagramURL() string {
	return fmt.Sprintf("%s/%s", c.Instagram.GraphURL, c.Instagram.GraphVersion)
}

// FacebookURL retorna a URL base versionada do graph.facebook.com
func (c *Config) FacebookURL() string {
	return fmt.Sprintf("%s/%s", c.Instagram.FacebookGraphURL, c.Instagram.FacebookVersion)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development" || c.App.Env == "dev"
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
