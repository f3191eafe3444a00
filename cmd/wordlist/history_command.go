package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"wordlist/internal/ledger"
	"wordlist/internal/logging"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent add and pick runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.Ledger.Enabled {
				fmt.Fprintln(out, "History ledger is disabled; set [ledger] enabled = true in the config file.")
				return nil
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			store := ctx.openLedger(logging.WithContext(ctx.runContext(cmd), logger))
			if store == nil {
				return fmt.Errorf("open history ledger at %s", cfg.Ledger.Path)
			}

			entries, err := store.Recent(ctx.runContext(cmd), limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}
			fmt.Fprintln(out, renderHistoryTable(entries))
			version, err := store.SchemaVersion(ctx.runContext(cmd))
			if err != nil {
				return err
			}
			detail := fmt.Sprintf("%s (schema v%d)", store.Path(), version)
			fmt.Fprintln(out, renderStatusLine("Ledger", statusInfo, detail, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", ledger.DefaultLimit, "Number of runs to show")
	return cmd
}

var historyColumns = []column{
	{title: "When"},
	{title: "Run"},
	{title: "Operation"},
	{title: "Target"},
	{title: "Sources", numeric: true},
	{title: "Skipped", numeric: true},
	{title: "Words", numeric: true},
	{title: "Count", numeric: true},
}

func renderHistoryTable(entries []ledger.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		words := humanize.Comma(int64(e.WordsAfter))
		if e.Operation == ledger.OperationAdd {
			words = fmt.Sprintf("%s -> %s", humanize.Comma(int64(e.WordsBefore)), words)
		}
		rows = append(rows, []string{
			humanize.Time(e.CreatedAt),
			shortID(e.RunID),
			string(e.Operation),
			e.Target,
			strconv.Itoa(e.Sources),
			strconv.Itoa(e.Skipped),
			words,
			strconv.Itoa(e.Count),
		})
	}
	return renderTable(historyColumns, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
