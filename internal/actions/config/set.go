package config

import (
	"strings"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/usage"
)

func set(args dispatchers.CommandArgs, deps Deps) error {
	pair, err := args.StrVec(OptSet, true)
	if err != nil {
		return err
	}
	if len(pair) < 2 {
		return usage.NotEnoughArguments(OptSet)
	}

	// A value token containing spaces comes back split
	key, value := pair[0], strings.Join(pair[1:], " ")
	if _, ok := domain.LookupConfigKey(key); !ok {
		return usage.InvalidConfigKey(key)
	}

	if err := deps.Set(key, value); err != nil {
		return err
	}

	_, _ = deps.Printf("%s=%s\n", key, value)
	return nil
}
