package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aw-dashboard/dashboard-api/internal/activitywatch"
	"github.com/aw-dashboard/dashboard-api/internal/api/http"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log            LogConfig            `mapstructure:"log"`
	Http           http.Config          `mapstructure:"http"`
	ActivityWatch  activitywatch.Config `mapstructure:"activitywatch"`
	Classification ClassificationConfig `mapstructure:"classification"`
}

// Keyword lists are comma separated so they can be overridden from env,
// e.g. CLASSIFICATION_PRODUCTIVE="code,editor,terminal,figma".
type ClassificationConfig struct {
	Productive string `mapstructure:"productive"`
	Neutral    string `mapstructure:"neutral"`
}

var config Config

func ParseCommaSeparated(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", LOG_LEVEL_INFO)
	v.SetDefault("http.port", 5601)
	v.SetDefault("http.allowed_origin", "http://localhost:3000")
	v.SetDefault("activitywatch.url", "http://localhost:5600")
	v.SetDefault("activitywatch.timeout", "30s")
	v.SetDefault("activitywatch.max_concurrent_fetches", 4)
	v.SetDefault("classification.productive", "code,editor,terminal")
	v.SetDefault("classification.neutral", "browser,email,chrome,firefox,safari")
}

func InitConfig() {
	_ = godotenv.Load()

	viper.SetConfigName("application")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd/dashboard-api")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	configFileFound := true
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
		configFileFound = false
	}

	if err := viper.Unmarshal(&config); err != nil {
		panic(err)
	}

	// Initialize logger with configured log level
	initLogger(config.Log.Level)

	if !configFileFound {
		slog.Warn("No application.yaml found, using defaults and environment")
	} else {
		viper.OnConfigChange(func(e fsnotify.Event) {
			level := viper.GetString("log.level")
			setLogLevel(level)
			slog.Info("Config file changed", "file", e.Name, "op", e.Op.String(), "log_level", level)
		})
		viper.WatchConfig()
	}

	// Pretty print config as JSON (only at DEBUG level)
	if strings.ToUpper(config.Log.Level) == LOG_LEVEL_DEBUG {
		configJSON, err := json.MarshalIndent(config, "", "  ")
		if err == nil {
			fmt.Println("Config loaded:")
			fmt.Println(string(configJSON))
		}
	}
}
