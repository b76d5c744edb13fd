package config

import (
	"github.com/footprint-tools/cmdr/internal/domain"
)

func list(deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	// Only show visible (non-hidden) keys
	for _, key := range domain.VisibleConfigKeys() {
		if value, exists := configMap[key.Name]; exists {
			_, _ = deps.Printf("%s=%s\n", key.Name, value)
		}
	}

	return nil
}
