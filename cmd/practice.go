package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/screens/room"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Jump straight into a timed session",
	Long:  "Start an interview session immediately, skipping the track and mode pickers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		typStr, _ := cmd.Flags().GetString("type")
		modeStr, _ := cmd.Flags().GetString("mode")

		typ, err := parseType(typStr)
		if err != nil {
			return err
		}
		mode, err := parseMode(modeStr)
		if err != nil {
			return err
		}

		return runApp(cmd, func(gw *gateway.Gateway, coachSvc *coach.Service) screen.Screen {
			return room.New(typ, mode, gw, coachSvc)
		})
	},
}

func init() {
	practiceCmd.Flags().String("type", string(bank.TypeTechnical), "Interview track: technical, behavioral or system-design")
	practiceCmd.Flags().String("mode", string(bank.ModeMCQ), "Session mode: mcq, coding or quiz")
}

func parseType(s string) (bank.InterviewType, error) {
	for _, t := range bank.Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown interview type %q", s)
}

func parseMode(s string) (bank.Mode, error) {
	for _, m := range bank.Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}
