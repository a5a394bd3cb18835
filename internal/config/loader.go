// internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTuning загружает игровые настройки.
// Порядок поиска: явный путь -> ~/.tanchiki/config.yaml -> ./configs/tanchiki.yaml -> дефолты.
func LoadTuning(customPath string) (Tuning, error) {
	cfg := DefaultTuning()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultTuning() // частично разобранный yaml не оставляем
		}
	}

	if data, err := os.ReadFile("configs/tanchiki.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultTuning()
	}

	return cfg, nil
}

// userConfigPath возвращает путь к пользовательскому конфигу или "".
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tanchiki", filename)
}
