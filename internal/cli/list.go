package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/catalog"
)

// ListResult holds the members of one type in registration order.
type ListResult struct {
	Type    string         `json:"type" yaml:"type"`
	Kind    string         `json:"kind" yaml:"kind"`
	Members []MemberResult `json:"members" yaml:"members"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <type>",
		Short: "List the members of a type",
		Long: `List the members of an enumeration or flags type in declaration order.

Listing a flags type validates its definitions first; malformed flag
values are reported instead of the member list.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
}

func runList(opts *RootOptions, typeName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	c, err := loadCatalog(opts, formatter)
	if err != nil {
		return err
	}

	def, ok := c.Definition(typeName)
	if !ok {
		return outputUnknownType(formatter, c, "enumeration", typeName)
	}

	var members []catalog.Member
	if s, isFlags := c.Flags(typeName); isFlags {
		if members, err = s.List(); err != nil {
			return outputEnumError(formatter, err)
		}
	} else {
		r, _ := c.Enum(typeName)
		members = r.List()
	}

	result := ListResult{
		Type:    def.Name,
		Kind:    string(def.Kind),
		Members: memberResults(members),
	}

	if formatter.Structured() {
		return formatter.Success(result)
	}

	for _, m := range result.Members {
		fmt.Fprintf(formatter.Writer, "%s=%d\n", m.Name, m.Value)
	}
	return nil
}
