package wavelet

import "fmt"

// ConfigurationError reports a request or plan that cannot produce a pulse.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "wavelet: " + e.Msg
	}
	return fmt.Sprintf("wavelet: %s: %s", e.Field, e.Msg)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
