// backend/src/cmd/evaluate.go
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/taxsarthi/backend/src/calculator"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <expression>",
	Short: "Evaluate a calculator expression (must start with '=')",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := args[0]
		if pre := calculator.ValidateCalculatorExpression(expr); !pre.IsValid {
			return errors.New(pre.Message)
		}
		result, err := calculator.Evaluate(expr)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
