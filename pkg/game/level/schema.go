package level

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/level.schema.json
var levelSchemaSource string

var (
	levelSchemaOnce sync.Once
	levelSchema     *jsonschema.Schema
	levelSchemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	levelSchemaOnce.Do(func() {
		levelSchema, levelSchemaErr = jsonschema.CompileString("level.schema.json", levelSchemaSource)
	})
	return levelSchema, levelSchemaErr
}

// ValidateSchema checks a JSON document holding an array of levels against the level schema
func ValidateSchema(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile level schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode levels: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("levels do not match schema: %w", err)
	}
	return nil
}
