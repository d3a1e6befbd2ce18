package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every value the server cannot run without is
// present, regardless of where it was loaded from.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"server port":    cfg.ServerPort,
		"server host":    cfg.ServerHost,
		"db host":        cfg.DBHost,
		"db port":        cfg.DBPort,
		"db user":        cfg.DBUser,
		"db password":    cfg.DBPassword,
		"db name":        cfg.DBName,
		"db ssl mode":    cfg.DBSSLMode,
		"redis host":     cfg.RedisHost,
		"redis port":     cfg.RedisPort,
		"redis password": cfg.RedisPassword,
		"jwt secret":     cfg.JWTSecret,
	}

	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
