package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfbb/lpqr/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently rendered payloads",
	RunE:  runHistory,
}

var flagHistoryN int

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryN, "limit", "n", 20, "number of entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.HistoryDB == "" {
		return fmt.Errorf("history is disabled: set history_db in %s", configPath())
	}
	h, err := history.New(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer h.Close()

	entries, err := h.Recent(flagHistoryN)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No renders recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "  %s  %-20s %s  %s\n", e.Time.Local().Format("2006-01-02 15:04:05"), e.Formatter, e.Level, e.Payload)
	}
	return nil
}
