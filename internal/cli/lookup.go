package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/catalog"
)

// Lookup modes for --by.
const (
	LookupAuto  = "auto"
	LookupName  = "name"
	LookupValue = "value"
)

var validLookups = []string{LookupAuto, LookupName, LookupValue}

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	IgnoreCase bool
	By         string
}

// LookupResult is the instance found by a lookup.
type LookupResult struct {
	Type         string `json:"type" yaml:"type"`
	MemberResult `yaml:",inline"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup <type> <name|value>",
		Short: "Find one instance by name or value",
		Long: `Find one instance of a type by its name or its integer value.

With --by auto (the default) an argument that parses as an integer is
looked up by value and anything else by name. Several names may share a
value; a value lookup returns the first one declared.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "match names case-insensitively")
	cmd.Flags().StringVar(&opts.By, "by", LookupAuto, "lookup key (auto|name|value)")

	return cmd
}

func runLookup(opts *RootOptions, lookupOpts *LookupOptions, typeName, key string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if !slices.Contains(validLookups, lookupOpts.By) {
		message := fmt.Sprintf("invalid --by %q: must be one of %v", lookupOpts.By, validLookups)
		_ = formatter.Error(catalog.ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	c, err := loadCatalog(opts, formatter)
	if err != nil {
		return err
	}

	r, ok := c.Registry(typeName)
	if !ok {
		return outputUnknownType(formatter, c, "enumeration", typeName)
	}

	value, parseErr := strconv.ParseInt(key, 0, 64)
	byValue := lookupOpts.By == LookupValue || (lookupOpts.By == LookupAuto && parseErr == nil)

	var found catalog.Member
	if byValue {
		if parseErr != nil {
			message := fmt.Sprintf("invalid value %q: %v", key, parseErr)
			_ = formatter.Error(catalog.ErrCodeGeneric, message, nil)
			return NewExitError(ExitCommandError, message)
		}
		formatter.VerboseLog("Looking up %s by value %d", typeName, value)
		found, err = r.FromValue(value)
	} else {
		formatter.VerboseLog("Looking up %s by name %q (ignore case: %t)", typeName, key, lookupOpts.IgnoreCase)
		found, err = r.FromName(key, lookupOpts.IgnoreCase)
	}
	if err != nil {
		return outputEnumError(formatter, err)
	}

	result := LookupResult{
		Type:         r.TypeName(),
		MemberResult: MemberResult{Name: found.Name(), Value: found.Value()},
	}

	if formatter.Structured() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s.%s=%d\n", result.Type, result.Name, result.Value)
	return nil
}
