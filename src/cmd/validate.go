// backend/src/cmd/validate.go
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/taxsarthi/backend/src/config"
	"github.com/username/taxsarthi/backend/src/limits"
	"github.com/username/taxsarthi/backend/src/models"
	"github.com/username/taxsarthi/backend/src/normalizer"
	"github.com/username/taxsarthi/backend/src/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <declaration.json>",
	Short: "Validate a declaration and print its advisory warnings",
	Long: `Reads a nested declaration record (JSON, as the remote API supplies
it), normalizes it into the flat form shape and runs every statutory
check. The warnings are advisory: a declaration is never rejected for
exceeding a ceiling. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if args[0] == "-" {
			raw, err = io.ReadAll(os.Stdin)
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading declaration: %w", err)
		}

		var decl models.Declaration
		if err := json.Unmarshal(raw, &decl); err != nil {
			return fmt.Errorf("decoding declaration: %w", err)
		}

		table, err := limits.Load(config.Cfg.TaxYear)
		if err != nil {
			return err
		}

		rec := normalizer.ToFormData(&decl, decl.EmployeeID)
		result := validation.ValidateTaxationForm(rec, table)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
