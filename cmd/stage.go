package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyranoaladin/nexus-scoring/internal/stage"
)

var stageCmd = &cobra.Command{
	Use:   "stage [file]",
	Short: "Score a stage QCM payload",
	Long: "Reads a QCM payload ({questions, answers}) from the given file (or stdin),\n" +
		"runs the weight-tiered stage scorer, and writes the result as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args)
		if err != nil {
			return err
		}

		p, err := stage.Parse(raw)
		if err != nil {
			return err
		}

		result := stage.ComputeScore(p.Answers, p.Questions)

		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			fmt.Fprintln(cmd.OutOrStdout(), renderStageSummary(result))
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	stageCmd.Flags().Bool("pretty", false, "Render a human-readable summary instead of JSON")
}
