// Where: cli/internal/translator/errors.go
// What: Structured error raised by the translation precondition check.
// Why: Carry a recovery suggestion alongside the failure, like the client SDK does.
package translator

import "fmt"

// InvalidConfigError reports a legacy configuration that cannot be
// translated. The only condition that produces it is the absence of the
// project-region marker key, which every generated legacy config carries.
type InvalidConfigError struct {
	Name               string
	Message            string
	RecoverySuggestion string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func newMissingRegionError() *InvalidConfigError {
	return &InvalidConfigError{
		Name:               "InvalidConfigError",
		Message:            "invalid legacy config parameter",
		RecoverySuggestion: "ensure the input is the configuration object generated into aws-exports / amplifyconfiguration",
	}
}
