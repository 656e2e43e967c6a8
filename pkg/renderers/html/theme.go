package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// buildThemeContext maps a resolved go-theme renderer configuration into the
// template context: name/variant for data attributes, token classes, and a
// :root CSS variable block.
func buildThemeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":         cfg.Theme,
		"variant":      cfg.Variant,
		"tokens":       copyStringMap(cfg.Tokens),
		"cssVars":      copyStringMap(cfg.CSSVars),
		"cssVarsStyle": cssVarsStyle(cfg.CSSVars),
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
