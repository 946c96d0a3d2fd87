package catalog

import (
	"fmt"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

var (
	definitionFields = []string{"members", "allow_negative_input", "allow_unsafe_values"}
	memberFields     = []string{"name", "value"}
)

// decodeCUE compiles a CUE catalog file and extracts its definitions.
// Uses the CUE SDK's Go API directly.
func decodeCUE(data []byte, file string) ([]*Definition, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(file))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err, file)
	}

	if err := checkFields(v, file, "catalog", []string{string(KindEnum), string(KindFlags)}); err != nil {
		return nil, err
	}

	var defs []*Definition
	for _, kind := range kinds {
		kindVal := v.LookupPath(cue.ParsePath(string(kind)))
		if !kindVal.Exists() {
			continue
		}
		iter, err := kindVal.Fields()
		if err != nil {
			return nil, formatCUEError(err, file)
		}
		for iter.Next() {
			def, err := compileDefinition(iter.Label(), kind, iter.Value(), file)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// compileDefinition parses a single type declaration.
func compileDefinition(name string, kind Kind, v cue.Value, file string) (*Definition, error) {
	def := &Definition{
		Name: name,
		Kind: kind,
		File: file,
		Line: lineOf(v.Pos()),
	}

	if err := checkFields(v, file, name, definitionFields); err != nil {
		return nil, err
	}

	var err error
	if def.AllowNegativeInput, err = optionalBool(v, "allow_negative_input", file); err != nil {
		return nil, err
	}
	if def.AllowUnsafeValues, err = optionalBool(v, "allow_unsafe_values", file); err != nil {
		return nil, err
	}

	membersVal := v.LookupPath(cue.ParsePath("members"))
	if !membersVal.Exists() {
		return nil, &LoadError{
			Code:    ErrCodeNoMembers,
			Message: fmt.Sprintf("type %q: members is required", name),
			Type:    name,
			File:    file,
			Line:    def.Line,
		}
	}
	iter, err := membersVal.List()
	if err != nil {
		return nil, invalidField(name, "members", "must be a list", file, membersVal.Pos())
	}
	for iter.Next() {
		m, err := compileMember(name, iter.Value(), file)
		if err != nil {
			return nil, err
		}
		def.Members = append(def.Members, m)
	}
	return def, nil
}

// compileMember parses one {name, value} entry.
func compileMember(typeName string, v cue.Value, file string) (MemberDef, error) {
	var m MemberDef
	if err := checkFields(v, file, typeName+".members", memberFields); err != nil {
		return m, err
	}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return m, invalidField(typeName, "name", "is required", file, v.Pos())
	}
	name, err := nameVal.String()
	if err != nil {
		return m, invalidField(typeName, "name", "must be a string", file, nameVal.Pos())
	}

	valueVal := v.LookupPath(cue.ParsePath("value"))
	if !valueVal.Exists() {
		return m, invalidField(typeName, "value", "is required", file, v.Pos())
	}
	value, err := valueVal.Int64()
	if err != nil {
		return m, invalidField(typeName, "value", "must be a 64-bit integer", file, valueVal.Pos())
	}

	m.Name = name
	m.Value = value
	return m, nil
}

func optionalBool(v cue.Value, field, file string) (bool, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return false, nil
	}
	b, err := fv.Bool()
	if err != nil {
		return false, invalidField("", field, "must be a boolean", file, fv.Pos())
	}
	return b, nil
}

// checkFields rejects labels outside allowed.
func checkFields(v cue.Value, file, context string, allowed []string) error {
	iter, err := v.Fields()
	if err != nil {
		return &LoadError{
			Code:    ErrCodeInvalidField,
			Message: fmt.Sprintf("%s: must be a struct", context),
			File:    file,
			Line:    lineOf(v.Pos()),
		}
	}
	for iter.Next() {
		label := iter.Label()
		if !slices.Contains(allowed, label) {
			return &LoadError{
				Code:    ErrCodeInvalidField,
				Message: fmt.Sprintf("%s: unknown field %q", context, label),
				File:    file,
				Line:    lineOf(iter.Value().Pos()),
			}
		}
	}
	return nil
}

func invalidField(typeName, field, problem, file string, pos token.Pos) *LoadError {
	msg := fmt.Sprintf("%s %s", field, problem)
	if typeName != "" {
		msg = fmt.Sprintf("type %q: %s", typeName, msg)
	}
	return &LoadError{
		Code:    ErrCodeInvalidField,
		Message: msg,
		Type:    typeName,
		File:    file,
		Line:    lineOf(pos),
	}
}

// lineOf extracts the line number from a token.Pos.
func lineOf(pos token.Pos) int {
	if pos.IsValid() {
		return pos.Line()
	}
	return 0
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error, file string) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), File: file, Err: err}
	}

	// Report the first error with position info
	first := errs[0]
	loadErr := &LoadError{
		Code:    ErrCodeParseFailed,
		Message: first.Error(),
		File:    file,
		Err:     err,
	}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		loadErr.Line = lineOf(positions[0])
	}
	return loadErr
}
