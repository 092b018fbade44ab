package cue

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Issue is a single schema violation.
type Issue struct {
	Schema  string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Schema, i.Message)
}

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every embedded .cue file. The schema name is the file
// name without extension (instrument.cue -> instrument).
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}

		name := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[name] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}

	return nil
}

// HasSchema reports whether a schema with the given name was loaded.
func (v *Validator) HasSchema(name string) bool {
	_, ok := v.schemas[name]
	return ok
}

// ValidateInstrument validates a decoded instrument definition.
func (v *Validator) ValidateInstrument(data map[string]any) ([]Issue, error) {
	schema, ok := v.schemas["instrument"]
	if !ok {
		return nil, fmt.Errorf("instrument schema not loaded")
	}
	return v.validateAgainstSchema(schema, data, "instrument")
}

// validateAgainstSchema unifies data with the #<SchemaType> definition and
// requires the result to be concrete.
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, schemaType string) ([]Issue, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	defPath := cue.ParsePath(fmt.Sprintf("#%s", strings.ToUpper(schemaType[:1])+schemaType[1:]))
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return nil, fmt.Errorf("schema %s has no %s definition", schemaType, defPath)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractIssues(err, schemaType), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractIssues(err, schemaType), nil
	}

	return nil, nil
}

func extractIssues(err error, schemaType string) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		issues = append(issues, Issue{
			Schema:  schemaType,
			Message: e.Error(),
		})
	}
	if len(issues) == 0 {
		issues = append(issues, Issue{Schema: schemaType, Message: err.Error()})
	}
	return issues
}
