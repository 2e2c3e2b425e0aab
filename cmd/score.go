package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cyranoaladin/nexus-scoring/internal/config"
	"github.com/cyranoaladin/nexus-scoring/internal/diagnostic"
	"github.com/cyranoaladin/nexus-scoring/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a competency diagnostic payload",
	Long: "Reads a diagnostic JSON payload from the given file (or stdin),\n" +
		"runs the competency-based scoring pipeline, and writes the result as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args)
		if err != nil {
			return err
		}

		data, err := diagnostic.Parse(raw)
		if err != nil {
			return err
		}

		configPath, _ := cmd.Flags().GetString("config")
		policy, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}

		result := scoring.ComputeV2(data, policy)

		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			fmt.Fprintln(cmd.OutOrStdout(), renderScoringSummary(result))
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	scoreCmd.Flags().Bool("pretty", false, "Render a human-readable summary instead of JSON")
}

// readInput reads the payload from the file argument, or stdin when absent.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
