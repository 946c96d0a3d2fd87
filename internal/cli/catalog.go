package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/catalog"
)

// MemberResult is one enumeration instance in command output.
type MemberResult struct {
	Name  string `json:"name" yaml:"name"`
	Value int64  `json:"value" yaml:"value"`
}

func memberResults(members []catalog.Member) []MemberResult {
	results := make([]MemberResult, 0, len(members))
	for _, m := range members {
		results = append(results, MemberResult{Name: m.Name(), Value: m.Value()})
	}
	return results
}

// newFormatter builds the formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting structured output
		Verbose:   opts.Verbose,
	}
}

// loadCatalog loads opts.Catalog, stopping at the first error.
// Load failures are reported through formatter and returned as command errors.
func loadCatalog(opts *RootOptions, formatter *OutputFormatter) (*catalog.Catalog, error) {
	c := catalog.New(formatter.Logger())
	if errs := c.Load(opts.Catalog, catalog.LoadModeFailFast); len(errs) > 0 {
		return nil, outputLoadError(formatter, errs[0])
	}
	formatter.VerboseLog("Loaded %d type(s) from %s", c.Len(), opts.Catalog)
	return c, nil
}

// outputLoadError reports a catalog load error (exit code 2).
func outputLoadError(formatter *OutputFormatter, err error) error {
	code, message := catalog.ErrCodeGeneric, err.Error()
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		code, message = loadErr.Code, loadErr.Error()
	}
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, message)
}

// outputUnknownType reports a type missing from the catalog (exit code 2).
func outputUnknownType(formatter *OutputFormatter, c *catalog.Catalog, kind, name string) error {
	message := fmt.Sprintf("unknown %s type %q", kind, name)
	_ = formatter.Error(catalog.ErrCodeNotFound, message, map[string]any{"types": c.Names()})
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", catalog.ErrCodeNotFound, message))
}

// outputEnumError reports a failed lookup or flag operation (exit code 1).
func outputEnumError(formatter *OutputFormatter, err error) error {
	code := catalog.CodeForEnumError(err)
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}
