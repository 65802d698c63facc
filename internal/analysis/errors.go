package analysis

import "fmt"

// ConfigError indicates invalid configuration: an out-of-range threshold,
// a violated threshold ordering, an unknown distribution family, or a
// target parameter solve that failed to converge.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("invalid configuration (%s): %v", e.Option, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DataError indicates the mark table cannot support the analysis: it is
// empty or violates the table schema.
type DataError struct {
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("insufficient or invalid mark data: %v", e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

func configErr(option, format string, args ...any) *ConfigError {
	return &ConfigError{Option: option, Err: fmt.Errorf(format, args...)}
}
