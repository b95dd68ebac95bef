package main

import (
	"fmt"

	questionnaire "github.com/Kaybarax/questionnaire-exercise"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of questionnaire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("questionnaire version %s\n", questionnaire.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
