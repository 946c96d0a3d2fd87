package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	IgnoreCase bool
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <flags-type> <names>",
		Short: "Combine a comma-separated list of flag names into a bitmask",
		Long: `Combine a comma-separated list of flag names into a bitmask.

Whitespace around names is ignored, as are empty entries. Every name must
be a declared member of the flags type.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "match names case-insensitively")

	return cmd
}

func runParse(opts *RootOptions, parseOpts *ParseOptions, typeName, names string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	c, err := loadCatalog(opts, formatter)
	if err != nil {
		return err
	}

	s, ok := c.Flags(typeName)
	if !ok {
		return outputUnknownType(formatter, c, "flags", typeName)
	}

	flags, err := s.FromName(names, parseOpts.IgnoreCase)
	if err != nil {
		return outputEnumError(formatter, err)
	}

	result := flagsResult(s.TypeName(), s.Or(flags...), flags)

	if formatter.Structured() {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, result.Value)
	return nil
}
