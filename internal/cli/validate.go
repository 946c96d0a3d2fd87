package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/catalog"
)

// ValidationError is one problem found in a catalog.
type ValidationError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid" yaml:"valid"`
	Types  int               `json:"types" yaml:"types"`
	Errors []ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every definition in the catalog",
		Long: `Load every catalog file and validate every type it declares.

Unlike the query commands, validate does not stop at the first problem:
all load errors and all flag definition errors (values that are not a
power of two, gaps in the bit sequence) are reported together.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	errs, types := ValidateCatalog(opts.Catalog, formatter)

	// A catalog that cannot be read at all is a command error, not a validation failure.
	if len(errs) == 1 && errs[0].File == "" {
		_ = formatter.Error(errs[0].Code, errs[0].Message, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", errs[0].Code, errs[0].Message))
	}

	if len(errs) > 0 {
		return outputValidationErrors(formatter, types, errs)
	}

	// Output success
	return outputValidateSuccess(formatter, types)
}

// ValidateCatalog loads path in collect-all mode and validates every flags
// type. It returns every problem found and the number of types that loaded.
func ValidateCatalog(path string, formatter *OutputFormatter) ([]ValidationError, int) {
	c := catalog.New(formatter.Logger())

	var result []ValidationError
	for _, err := range c.Load(path, catalog.LoadModeCollectAll) {
		result = append(result, toValidationError(err))
	}
	formatter.VerboseLog("Loaded %d type(s) from %s", c.Len(), path)

	for _, loadErr := range c.Validate() {
		result = append(result, toValidationError(loadErr))
	}
	return result, c.Len()
}

func toValidationError(err error) ValidationError {
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		return ValidationError{
			Code:    loadErr.Code,
			Message: loadErr.Message,
			Type:    loadErr.Type,
			File:    loadErr.File,
			Line:    loadErr.Line,
		}
	}
	return ValidationError{Code: catalog.ErrCodeGeneric, Message: err.Error()}
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, types int) error {
	if formatter.Structured() {
		return formatter.Success(ValidationResult{Valid: true, Types: types})
	}

	fmt.Fprintf(formatter.Writer, "✓ All %d type(s) valid\n", types)
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, types int, errs []ValidationError) error {
	failure := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))

	if formatter.Structured() {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Types:  types,
				Errors: errs,
			},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		if formatter.Format == "json" {
			encoder := json.NewEncoder(formatter.Writer)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(response); err != nil {
				return err
			}
		} else if err := formatter.encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return failure
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		switch {
		case err.File != "" && err.Line > 0:
			fmt.Fprintf(formatter.Writer, "%s:%d\n", err.File, err.Line)
		case err.File != "":
			fmt.Fprintln(formatter.Writer, err.File)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	// Validation failures = exit code 1
	return failure
}
