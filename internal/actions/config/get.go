package config

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/usage"
)

func get(args dispatchers.CommandArgs, deps Deps) error {
	key, err := args.String(OptGet)
	if err != nil {
		return err
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
