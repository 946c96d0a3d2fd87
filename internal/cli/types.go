package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TypeSummary describes one catalog type.
type TypeSummary struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
	Members int    `json:"members" yaml:"members"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
}

// TypesResult lists every catalog type.
type TypesResult struct {
	Types []TypeSummary `json:"types" yaml:"types"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "types",
		Short:         "List every enumeration type in the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(rootOpts, cmd)
		},
	}
}

func runTypes(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	c, err := loadCatalog(opts, formatter)
	if err != nil {
		return err
	}

	result := TypesResult{Types: []TypeSummary{}}
	for _, name := range c.Names() {
		def, _ := c.Definition(name)
		result.Types = append(result.Types, TypeSummary{
			Name:    def.Name,
			Kind:    string(def.Kind),
			Members: len(def.Members),
			File:    def.File,
		})
	}

	if formatter.Structured() {
		return formatter.Success(result)
	}

	for _, t := range result.Types {
		fmt.Fprintf(formatter.Writer, "%s (%s, %d members)\n", t.Name, t.Kind, t.Members)
	}
	return nil
}
