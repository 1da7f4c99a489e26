package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Request body schemas, compiled once at startup. A bad embedded schema is a
// programming error, hence the panic in mustSchema.
var (
	registerSchema = mustSchema("schemas/register.json")
	profileSchema  = mustSchema("schemas/profile.json")
	intakeSchema   = mustSchema("schemas/intake.json")
)

func mustSchema(path string) *jsonschema.Schema {
	b, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", path, err))
	}
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		panic(fmt.Sprintf("parse schema %s: %v", path, err))
	}
	return rs
}

// validateBody checks a raw JSON payload against a schema and returns a
// client-facing message for the first violation.
func validateBody(ctx context.Context, rs *jsonschema.Schema, payload []byte) error {
	keyErrs, err := rs.ValidateBytes(ctx, payload)
	if err != nil {
		return fmt.Errorf("invalid json")
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("%s: %s", keyErrs[0].PropertyPath, keyErrs[0].Message)
	}
	return nil
}
