package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avikram/pathwise/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-track practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		summaries, err := st.Summaries(cmd.Context())
		if err != nil {
			return fmt.Errorf("load summaries: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		for _, sum := range summaries {
			line := fmt.Sprintf("%-16s %d attempts", sum.Type.Label(), sum.Count)
			if sum.Scored > 0 {
				line += fmt.Sprintf("   %d%% avg", sum.AverageScore)
			}
			if !sum.Last.IsZero() {
				line += "   last " + sum.Last.Format("2006-01-02")
			}
			fmt.Println(line)
		}
		return nil
	},
}
