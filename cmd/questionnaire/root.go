package main

import (
	"fmt"
	"os"

	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/file"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "questionnaire",
	Short: "Questionnaire is an interactive command-line survey runner",
	Long: `Questionnaire asks the questions defined in a JSON or YAML document,
validates every answer against the question's kind, skips questions whose
conditions are not met, and prints a recap once the session completes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("file", file.DefaultPath(), "Path to the questionnaire document")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
