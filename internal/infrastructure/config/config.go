package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "obleafusion/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Brand     sharedConfig.BrandConfig     `mapstructure:"brand"`
	I18n      sharedConfig.I18nConfig      `mapstructure:"i18n"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// legacyEnv maps config keys to the bare environment variable names the
// service has always been deployed with.
var legacyEnv = map[string]string{
	"server.port":         "PORT",
	"email.smtp_host":     "MAIL_HOST",
	"email.smtp_port":     "MAIL_PORT",
	"email.smtp_user":     "MAIL_USER",
	"email.smtp_password": "MAIL_PASSWORD",
	"email.from_address":  "MAIL_FROM",
	"email.booking_to":    "BOOKING_EMAIL_TO",
	"email.contact_to":    "CONTACT_EMAIL_TO",
	"brand.owner_name":    "OWNER_NAME",
}

// Load reads .env files, the optional configs/config.yaml and environment
// variables, in increasing order of precedence.
func Load(env string, configPaths ...string) (*Config, error) {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"./configs", "../configs", "../../configs"}
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix("OBLEAFUSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "OBLEAFUSION_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", legacy, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3010)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.api_prefix", "/api")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.max_size_mb", 50)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)
	v.SetDefault("logger.compress", true)

	v.SetDefault("email.smtp_host", "smtp.gmail.com")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@obleafusion.com")
	v.SetDefault("email.from_name", "ObleaFusion")
	v.SetDefault("email.booking_to", "")
	v.SetDefault("email.contact_to", "")

	v.SetDefault("brand.name", "ObleaFusion")
	v.SetDefault("brand.owner_name", "Equipo ObleaFusion")
	v.SetDefault("brand.logo_url", "")
	v.SetDefault("brand.timezone", "America/Bogota")

	v.SetDefault("i18n.override_dir", "")

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.requests_per_minute", 10)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("ratelimit.redis.enabled", false)
	v.SetDefault("ratelimit.redis.host", "localhost")
	v.SetDefault("ratelimit.redis.port", 6379)
	v.SetDefault("ratelimit.redis.password", "")
	v.SetDefault("ratelimit.redis.db", 0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
