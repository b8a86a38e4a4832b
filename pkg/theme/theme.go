package theme

import (
	"fmt"
	"strings"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	Default = Light
)

// Parse accepts "light" or "dark" in any case.
func Parse(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q", value)
	}
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon names the toggle icon: a moon offers dark mode, a sun offers light mode.
func (t Theme) Icon() string {
	if t == Dark {
		return "sun"
	}
	return "moon"
}
