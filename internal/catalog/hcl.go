package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclCatalogFile is the top-level structure of an HCL catalog file.
type hclCatalogFile struct {
	Enums []*hclType `hcl:"enum,block"`
	Flags []*hclType `hcl:"flags,block"`
}

type hclType struct {
	Name               string       `hcl:"name,label"`
	AllowNegativeInput bool         `hcl:"allow_negative_input,optional"`
	AllowUnsafeValues  bool         `hcl:"allow_unsafe_values,optional"`
	Members            []*hclMember `hcl:"member,block"`
	DefRange           hcl.Range    `hcl:",def_range"`
}

type hclMember struct {
	Name  string `hcl:"name,label"`
	Value int64  `hcl:"value"`
}

// maxBit is the highest bit index bit() accepts; bit 63 is the int64 sign bit.
const maxBit = 62

// bitFunc returns 1 << n, so flag members can be written as value = bit(3).
var bitFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "n", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var n int
		if err := gocty.FromCtyValue(args[0], &n); err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		if n < 0 || n > maxBit {
			return cty.NilVal, function.NewArgErrorf(0, "bit index %d out of range 0..%d", n, maxBit)
		}
		return cty.NumberIntVal(int64(1) << n), nil
	},
})

// hclEvalContext is the evaluation context for member values.
func hclEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"all_bits": cty.NumberIntVal(-1),
		},
		Functions: map[string]function.Function{
			"bit": bitFunc,
		},
	}
}

// decodeHCL parses an HCL catalog file:
//
//	flags "Permission" {
//	  allow_negative_input = true
//	  member "Read"  { value = bit(0) }
//	  member "Write" { value = bit(1) }
//	  member "All"   { value = all_bits }
//	}
func decodeHCL(data []byte, file string) ([]*Definition, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, file)
	if diags.HasErrors() {
		return nil, hclLoadError(diags, file)
	}

	var parsed hclCatalogFile
	if diags := gohcl.DecodeBody(hclFile.Body, hclEvalContext(), &parsed); diags.HasErrors() {
		return nil, hclLoadError(diags, file)
	}

	var defs []*Definition
	for _, kind := range kinds {
		blocks := parsed.Enums
		if kind == KindFlags {
			blocks = parsed.Flags
		}
		for _, block := range blocks {
			def := &Definition{
				Name:               block.Name,
				Kind:               kind,
				AllowNegativeInput: block.AllowNegativeInput,
				AllowUnsafeValues:  block.AllowUnsafeValues,
				File:               file,
				Line:               block.DefRange.Start.Line,
			}
			for _, m := range block.Members {
				def.Members = append(def.Members, MemberDef{Name: m.Name, Value: m.Value})
			}
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// hclLoadError reports the first error diagnostic with its position.
func hclLoadError(diags hcl.Diagnostics, file string) *LoadError {
	loadErr := &LoadError{
		Code:    ErrCodeParseFailed,
		Message: diags.Error(),
		File:    file,
		Err:     diags,
	}
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		loadErr.Message = diag.Summary
		if diag.Detail != "" {
			loadErr.Message = fmt.Sprintf("%s: %s", diag.Summary, diag.Detail)
		}
		if diag.Subject != nil {
			loadErr.Line = diag.Subject.Start.Line
		}
		break
	}
	return loadErr
}
