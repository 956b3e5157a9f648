// Where: cli/internal/translator/translate.go
// What: Legacy flat config to nested resources config translation.
// Why: Bridge CLI-generated aws-exports files to the modern client schema.
package translator

import (
	"github.com/poruru/amplify-config-bridge/cli/internal/outputs"
	"github.com/rs/zerolog"
)

// legacyKeyProjectRegion is the marker key every generated legacy config
// carries. Its presence (not its value) is the single validated precondition.
const legacyKeyProjectRegion = "aws_project_region"

// Translator converts a legacy flat configuration record into the nested
// resources config. It holds no state between calls beyond the injected
// diagnostic logger.
type Translator struct {
	log zerolog.Logger
}

// New creates a Translator emitting diagnostics to the given logger. The
// logger is used at most once per Translate call (auth-mode fallback).
func New(log zerolog.Logger) *Translator {
	return &Translator{log: log}
}

// Translate performs a single-pass translation of the legacy config. Each
// output section is included only when its legacy trigger field is present;
// absent triggers omit the section rather than emitting an empty value.
// The input is never mutated.
func (t *Translator) Translate(legacy map[string]any) (outputs.ResourcesConfig, error) {
	if _, ok := legacy[legacyKeyProjectRegion]; !ok {
		return outputs.ResourcesConfig{}, newMissingRegionError()
	}

	return outputs.ResourcesConfig{
		Analytics:     parseAnalytics(legacy),
		API:           t.parseAPI(legacy),
		Auth:          parseAuth(legacy),
		Geo:           parseGeo(legacy),
		Interactions:  parseInteractions(legacy),
		Notifications: parseNotifications(legacy),
		Predictions:   parsePredictions(legacy),
		Storage:       parseStorage(legacy),
	}, nil
}
