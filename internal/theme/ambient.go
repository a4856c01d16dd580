package theme

import (
	"os"
	"strconv"
	"strings"
)

// Ambient reports the system-level dark preference. ok is false when no
// signal is available.
type Ambient func() (dark bool, ok bool)

// Unavailable is an Ambient without any signal.
func Unavailable() (bool, bool) {
	return false, false
}

// Fixed returns an Ambient that always reports the given value.
func Fixed(dark bool) Ambient {
	return func() (bool, bool) {
		return dark, true
	}
}

// FromEnv reads the ambient signal from the environment:
//   - FERIADOS_PREFERS_DARK (boolean), when set
//   - COLORFGBG ("fg;bg"), where background colors 0-6 and 8 are dark
func FromEnv() Ambient {
	return func() (bool, bool) {
		if v := strings.TrimSpace(os.Getenv("FERIADOS_PREFERS_DARK")); v != "" {
			dark, err := strconv.ParseBool(v)
			if err == nil {
				return dark, true
			}
		}
		return parseColorFGBG(os.Getenv("COLORFGBG"))
	}
}

// ForSystem maps the theme.system config value to an Ambient.
func ForSystem(system string) Ambient {
	switch strings.ToLower(strings.TrimSpace(system)) {
	case "dark":
		return Fixed(true)
	case "light":
		return Fixed(false)
	case "none":
		return Unavailable
	default:
		return FromEnv()
	}
}

func parseColorFGBG(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}

	parts := strings.Split(raw, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}
	return (bg >= 0 && bg <= 6) || bg == 8, true
}
