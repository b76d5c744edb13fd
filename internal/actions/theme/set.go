package theme

import (
	"fmt"
)

func setTheme(name string, deps Deps) error {
	if _, ok := deps.Themes[name]; !ok && name != "auto" {
		_, _ = deps.Printf("%s unknown theme: %s\n", deps.Styler.Error("error:"), name)
		_, _ = deps.Println()
		_, _ = deps.Println("available themes:")
		_, _ = deps.Println("  auto")
		for _, n := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", n)
		}
		return fmt.Errorf("unknown theme: %s", name)
	}

	if err := deps.Set(configKey, name); err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", deps.Styler.Success(name))
	return nil
}
