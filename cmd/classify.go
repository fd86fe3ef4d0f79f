package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sqlgate/validation"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <statement>",
	Short: "Show whether a statement would be accepted by the gateway",
	Long: `classify applies the same leading-keyword check the server uses and prints
"readonly" or "rejected". Nothing is sent to the database. Exits non-zero when
the statement would be rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statement := strings.Join(args, " ")
		class := validation.Classify(statement)

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", class, validation.LeadingKeyword(statement))
		if class != validation.Readonly {
			return fmt.Errorf("statement type not permitted: %q", validation.LeadingKeyword(statement))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
