package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 SHEETCAST_* 优先
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("SHEETCAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.audit_body_limit", 16384)
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.max_idle", 10)
	viper.SetDefault("database.max_open", 50)
	viper.SetDefault("database.max_lifetime", 30)
	viper.SetDefault("database.auto_migrate", true)
	viper.SetDefault("auth.issuer", "Sheetcast")
	viper.SetDefault("llm.text_model", "gpt-4o")
	viper.SetDefault("llm.max_concurrency", 5)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("sheets.range", "A:Z")
	viper.SetDefault("cron.sheet_sync", "@daily")
}
