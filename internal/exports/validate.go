// Where: cli/internal/exports/validate.go
// What: JSON-Schema validation of legacy config documents.
// Why: Catch malformed generated files before translation, on request.
package exports

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/aws-exports.schema.json
var legacySchemaSource string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Validate checks the legacy document against the embedded schema. The check
// is advisory: translation itself only requires the region marker key.
func Validate(document map[string]any) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("legacy config schema validation: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("aws-exports.schema.json", strings.NewReader(legacySchemaSource)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("aws-exports.schema.json")
	})
	return compiledSchema, schemaErr
}
