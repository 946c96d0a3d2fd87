package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/flagenum"
	"github.com/roach88/smartenum/internal/catalog"
)

// FlagsResult describes a bitmask and the flags it decomposes into.
type FlagsResult struct {
	Type    string         `json:"type" yaml:"type"`
	Value   int64          `json:"value" yaml:"value"`
	Names   string         `json:"names" yaml:"names"`
	Members []MemberResult `json:"members" yaml:"members"`
}

func flagsResult(typeName string, value int64, flags []catalog.Member) FlagsResult {
	return FlagsResult{
		Type:    typeName,
		Value:   value,
		Names:   flagenum.Join[catalog.Member, int64](flags),
		Members: memberResults(flags),
	}
}

// NewDecomposeCommand creates the decompose command.
func NewDecomposeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose <flags-type> <value>",
		Short: "Split a bitmask into its declared flags",
		Long: `Split an integer bitmask into the declared flags of a flags type.

A value that matches a declared member exactly (a combination, None, or
All) is returned as that member. Otherwise the value is split into its
single-bit flags, largest first. The value may be written in decimal or
with a 0x, 0o, or 0b prefix; pass negative values after "--".`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runDecompose(opts *RootOptions, typeName, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	value, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		message := fmt.Sprintf("invalid value %q: %v", arg, err)
		_ = formatter.Error(catalog.ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	c, err := loadCatalog(opts, formatter)
	if err != nil {
		return err
	}

	s, ok := c.Flags(typeName)
	if !ok {
		return outputUnknownType(formatter, c, "flags", typeName)
	}

	flags, err := s.FromValue(value)
	if err != nil {
		return outputEnumError(formatter, err)
	}
	formatter.VerboseLog("Decomposed %d into %d flag(s)", value, len(flags))

	result := flagsResult(s.TypeName(), value, flags)

	if formatter.Structured() {
		return formatter.Success(result)
	}

	if result.Names == "" {
		fmt.Fprintln(formatter.Writer, "(none)")
		return nil
	}
	fmt.Fprintln(formatter.Writer, result.Names)
	return nil
}
