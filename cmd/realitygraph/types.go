package realitygraph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thom899g/autonomous-cross-d/pkg/types"
)

var typesOutput string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Inspect the closed tag sets of the data model",
}

var typesNodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the node type tag set",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := make([]string, 0, len(types.AllNodeTypes()))
		for _, nt := range types.AllNodeTypes() {
			tags = append(tags, nt.String())
		}
		return renderTags(cmd.OutOrStdout(), typesOutput, tags)
	},
}

var typesCapabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List the capability type tag set",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := make([]string, 0, len(types.AllCapabilityTypes()))
		for _, ct := range types.AllCapabilityTypes() {
			tags = append(tags, ct.String())
		}
		return renderTags(cmd.OutOrStdout(), typesOutput, tags)
	},
}

func init() {
	typesCmd.PersistentFlags().StringVarP(&typesOutput, "output", "o", "table", "output format (table, json, yaml)")
	typesCmd.AddCommand(typesNodesCmd)
	typesCmd.AddCommand(typesCapabilitiesCmd)
	rootCmd.AddCommand(typesCmd)
}

// renderTags writes a tag list in the requested output format.
func renderTags(w io.Writer, format string, tags []string) error {
	switch format {
	case "table", "":
		for _, tag := range tags {
			if _, err := fmt.Fprintln(w, tag); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(tags)
	}
	return fmt.Errorf("unknown output format %q", format)
}
