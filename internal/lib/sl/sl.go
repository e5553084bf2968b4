// Package sl carries small helpers for structured slog attributes.
package sl

import "log/slog"

// Err renders an error under the conventional "error" key.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Module tags every record of a logger with the component that owns it.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Secret logs a credential without exposing it: everything but the last
// four characters is masked.
func Secret(key, value string) slog.Attr {
	return slog.String(key, mask(value))
}

func mask(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
