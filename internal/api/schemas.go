package api

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const idArray = `{
	"type": "array",
	"items": {"anyOf": [
		{"type": "integer", "minimum": 1},
		{"type": "string", "pattern": "^[1-9][0-9]{0,17}$"}
	]}
}`

const nullableString = `{"type": ["string", "null"]}`

// requestSchemas are keyed by the resource name they are compiled under.
var requestSchemas = map[string]string{
	"name.json": `{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`,
	"create-task.json": `{
		"type": "object",
		"required": ["text"],
		"properties": {
			"text": {"type": "string", "minLength": 1},
			"assignedTo": ` + nullableString + `,
			"dueDate": ` + nullableString + `
		}
	}`,
	"update-task.json": `{
		"type": "object",
		"properties": {
			"text": ` + nullableString + `,
			"assignedTo": ` + nullableString + `,
			"dueDate": ` + nullableString + `
		}
	}`,
	"reorder-lists.json": `{
		"type": "object",
		"required": ["orderedListIds"],
		"properties": {"orderedListIds": ` + idArray + `}
	}`,
	"reorder-tasks.json": `{
		"type": "object",
		"required": ["orderedTaskIds"],
		"properties": {
			"orderedTaskIds": ` + idArray + `,
			"newParentListId": {"type": ["integer", "null"], "minimum": 1}
		}
	}`,
	"move-task.json": `{
		"type": "object",
		"required": ["listId", "position"],
		"properties": {
			"listId": {"type": "integer", "minimum": 1},
			"position": {"type": "integer", "minimum": 0}
		}
	}`,
}

// schemaSet holds the compiled request schemas.
type schemaSet map[string]*jsonschema.Schema

func compileSchemas() (schemaSet, error) {
	compiler := jsonschema.NewCompiler()
	for name, src := range requestSchemas {
		if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	set := make(schemaSet, len(requestSchemas))
	for name := range requestSchemas {
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		set[name] = schema
	}
	return set, nil
}

// firstSchemaError returns the deepest, first reported cause of a schema
// failure as a field path and message.
func firstSchemaError(ve *jsonschema.ValidationError) (string, string) {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	field := strings.TrimPrefix(ve.InstanceLocation, "/")
	field = strings.ReplaceAll(field, "/", ".")
	if field == "" {
		field = "body"
	}
	return field, ve.Message
}
