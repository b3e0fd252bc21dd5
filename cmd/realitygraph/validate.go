package realitygraph

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thom899g/autonomous-cross-d/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate (node|capability) TAG...",
	Short: "Check tags for membership in a closed tag set",
	Long: `Validate checks each TAG for membership in the node type or capability
type set. Tags outside the set are reported and the command exits nonzero.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, tags := args[0], args[1:]

		parse, err := tagParser(kind)
		if err != nil {
			return err
		}

		var unknown int
		for _, tag := range tags {
			if _, err := parse(tag); err != nil {
				log.Error("tag rejected", "kind", kind, "tag", tag)
				unknown++
				continue
			}
			log.Debug("tag accepted", "kind", kind, "tag", tag)
			fmt.Fprintln(cmd.OutOrStdout(), tag)
		}

		if unknown > 0 {
			return fmt.Errorf("%d of %d tags outside the %s type set", unknown, len(tags), kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// tagParser selects the membership check for a tag kind.
func tagParser(kind string) (func(string) (fmt.Stringer, error), error) {
	switch kind {
	case "node", "nodes":
		return func(s string) (fmt.Stringer, error) {
			return types.ParseNodeType(s)
		}, nil
	case "capability", "capabilities":
		return func(s string) (fmt.Stringer, error) {
			return types.ParseCapabilityType(s)
		}, nil
	}
	return nil, fmt.Errorf("unknown tag kind %q (want node or capability)", kind)
}
