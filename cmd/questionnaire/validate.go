package main

import (
	"fmt"
	"os"

	questionnaire "github.com/Kaybarax/questionnaire-exercise"
	"github.com/Kaybarax/questionnaire-exercise/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a questionnaire document for schema problems",
	Long: `Loads the document, verifies it is well-formed, reports the first schema
violation found, and then checks every condition against the questions it
references, all without starting an interactive session.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Questionnaire is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}

	eng, err := questionnaire.New(path)
	if err != nil {
		return fmt.Errorf("failed to init engine: %w", err)
	}

	doc, err := eng.Document(cmd.Context())
	if err != nil {
		return err
	}

	// The schema is sound; now make sure no question is unreachable.
	return validator.ValidateReferences(doc)
}
