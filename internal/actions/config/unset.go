package config

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/usage"
)

func unset(args dispatchers.CommandArgs, deps Deps) error {
	key, err := args.String(OptUnset)
	if err != nil {
		return err
	}
	if _, ok := domain.LookupConfigKey(key); !ok {
		return usage.InvalidConfigKey(key)
	}

	if err := deps.Unset(key); err != nil {
		return err
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
