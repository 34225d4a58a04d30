package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/GiyoMoon/WitchTrade-BE/core/database"
	"github.com/GiyoMoon/WitchTrade-BE/core/logger"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/server"
	"github.com/GiyoMoon/WitchTrade-BE/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage the catalog is imported from.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Market holds tuning for offer synchronization.
	Market reconcile.Config `mapstructure:"market"`
}

// LoadConfig loads configuration from environment variables and .env file and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine in production
	_ = godotenv.Overload(envPath)

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	if err := validate.Struct(&config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid config %s: %q fails %s", envKey(verrs[0].Namespace()), fmt.Sprint(verrs[0].Value()), verrs[0].Tag())
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// registerDefaults registers every `mapstructure` key of t in Viper with the
// value of its `default` tag. Nested sections become dotted keys.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		// AutomaticEnv only resolves keys Viper already knows
		v.SetDefault(name, field.Tag.Get("default"))
	}
}

// envKey turns a validator namespace (Config.database.driver) into the
// environment variable a user sets (DATABASE_DRIVER).
func envKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToUpper(strings.Join(parts, "_"))
}
