package dataset

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var recordSchema string

// ValidateJSON checks a serialized dataset record against the record
// schema. It returns nil for valid records and an error listing every
// violation otherwise.
//
// Validation is input hardening for callers accepting records from outside
// (the CLI, harvest pipelines); the profiles themselves tolerate partial
// records by design and never validate.
func ValidateJSON(data []byte) error {
	schema := gojsonschema.NewStringLoader(recordSchema)
	document := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return fmt.Errorf("validate dataset record: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid dataset record: %s", strings.Join(problems, "; "))
}
