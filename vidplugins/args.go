// Package vidplugins provides the built-in node kinds that ship with
// every vidmod installation: a counting source and collecting sink for
// smoke-testing graphs, plus passthrough, gain and tee for simple
// single-kind pipelines. Each kind self-registers into registry.Global
// under a "vidmod-plugins-core::" qualified name (spec.md §6).
package vidplugins

import (
	"fmt"
	"strconv"
)

// manifest args arrive as map[string]any with string values (everything
// in a YAML manifest's args block is a string, per spec.md §6); these
// helpers parse them with a default when absent, matching the teacher's
// plugin argument conventions.

func argString(args map[string]any, key, def string) string {
	v, ok := args[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func argInt(args map[string]any, key string, def int) (int, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("vidplugins: arg %q: expected a string, got %T", key, v)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("vidplugins: arg %q: %w", key, err)
	}
	return n, nil
}

func argFloat(args map[string]any, key string, def float64) (float64, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("vidplugins: arg %q: expected a string, got %T", key, v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("vidplugins: arg %q: %w", key, err)
	}
	return f, nil
}
