package validate

import (
	"fmt"

	"github.com/chronicler-app/chronicler/internal/model"
)

// SchemaViolation reports a required root-level field that is missing or
// empty. It is the only hard failure the engine ever produces; every other
// defect recovers to a documented default.
type SchemaViolation struct {
	Kind  model.Kind
	Field string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("%s: required field %q is missing or empty", e.Kind, e.Field)
}
