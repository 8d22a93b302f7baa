package experiment

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// ValidateSchema checks raw experiment YAML against the embedded CUE
// schema. The path is used for error positions only; data is the file
// contents.
//
// CUE enforces field presence, types, and ranges (trials > 0, noise in
// [0,1], the fixed/uniform input shapes) in one place instead of scattered
// Go checks. Returns a descriptive error naming the offending field.
func ValidateSchema(path string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal: experiment schema does not compile: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Experiment"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("internal: experiment schema has no #Experiment: %w", err)
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return fmt.Errorf("failed to build experiment value: %w", err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("experiment does not match schema: %w", err)
	}
	return nil
}
