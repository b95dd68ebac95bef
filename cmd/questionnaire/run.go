package main

import (
	"fmt"
	"os"

	"github.com/Kaybarax/questionnaire-exercise/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the questionnaire interactively",
	Long: `Starts an interactive session for the configured questionnaire document.
Answers are validated as they arrive and a summary is printed at the end.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")

		// Allow positional argument to override the flag if the flag wasn't explicitly set
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}

		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")
		sessionID, _ := cmd.Flags().GetString("session")

		opts := cli.RunOptions{
			File:      path,
			SessionID: sessionID,
			Debug:     debug,
			Plain:     plain,
		}

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("session", "", "Session id for the first run (generated when empty)")
	runCmd.Flags().Bool("plain", false, "Disable the banner and markdown styling")

	// Make 'run' the default action when the binary is invoked without a subcommand
	rootCmd.Run = runCmd.Run
}
