package main

import (
	"fmt"
	"os"

	questionnaire "github.com/Kaybarax/questionnaire-exercise"
	"github.com/Kaybarax/questionnaire-exercise/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the question flow visualization",
	Long:  `Inspects the questionnaire document and outputs a Mermaid diagram (graph TD) showing the order questions are asked in and which answers they depend on.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}

		eng, err := questionnaire.New(path)
		if err != nil {
			fmt.Printf("Error initializing questionnaire: %v\n", err)
			os.Exit(1)
		}

		doc, err := eng.Document(cmd.Context())
		if err != nil {
			fmt.Printf("Error loading questionnaire: %v\n", err)
			os.Exit(1)
		}

		// Generate and print Mermaid graph
		fmt.Print(graph.GenerateMermaid(doc))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
