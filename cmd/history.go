package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avikram/pathwise/internal/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent interview attempts",
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

		limit, _ := cmd.Flags().GetInt("limit")

		attempts, err := st.ListAttempts(cmd.Context())
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}
		if limit > 0 && len(attempts) > limit {
			attempts = attempts[:limit]
		}

		for _, att := range attempts {
			score := "freeform"
			if att.ScorePercent != nil {
				score = fmt.Sprintf("%d%%", *att.ScorePercent)
			}
			fmt.Printf("%s  %-16s %-14s %s\n",
				att.Timestamp.Format("2006-01-02 15:04"),
				att.Type.Label(), att.Mode.Label(), score)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 for all)")
}
