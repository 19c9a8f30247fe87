package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	OTP      OTPConfig
	Flow     FlowConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// UpstreamConfig points at the storefront account-store API.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// RedisConfig is optional: an empty Addr keeps flow state in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type OTPConfig struct {
	ResendCooldownSeconds int
	// DevEcho passes the upstream's development-mode code echo through to
	// clients. Never enable outside environments without SMS delivery.
	DevEcho bool
}

type FlowConfig struct {
	TTLMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("OTP_RESEND_COOLDOWN_SECONDS", 30)
	viper.SetDefault("OTP_DEV_ECHO", false)
	viper.SetDefault("FLOW_TTL_MINUTES", 15)
	viper.SetDefault("REDIS_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        viper.GetString("UPSTREAM_BASE_URL"),
			TimeoutSeconds: viper.GetInt("UPSTREAM_TIMEOUT_SECONDS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		OTP: OTPConfig{
			ResendCooldownSeconds: viper.GetInt("OTP_RESEND_COOLDOWN_SECONDS"),
			DevEcho:               viper.GetBool("OTP_DEV_ECHO"),
		},
		Flow: FlowConfig{
			TTLMinutes: viper.GetInt("FLOW_TTL_MINUTES"),
		},
	}

	return config, nil
}
