package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <flow.json>",
	Short: "Check a flow document for structural defects",
	Long:  `Reads a flow document (JSON) and reports missing entry points, dangling edges, orphan nodes and self-loops.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc domain.CompanyFlow
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid flow document: %w", err)
	}

	result := validator.Validate(&doc)
	for _, w := range result.Warnings {
		fmt.Printf("⚠️  %s\n", w)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Printf("❌ %s\n", e)
		}
		return fmt.Errorf("%d error(s)", len(result.Errors))
	}

	fmt.Println("Flow is valid! ✅")
	return nil
}
