package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"wordlist/internal/preflight"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var listFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show wordlist size and path health",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			list, err := ctx.listPath(listFlag)
			if err != nil {
				return err
			}
			mgr, _, err := ctx.manager(cmd)
			if err != nil {
				return err
			}
			stats, err := mgr.Stats(ctx.runContext(cmd), list)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Path", stats.Path},
				{"Words", humanize.Comma(int64(stats.Words))},
				{"Size", humanize.IBytes(uint64(stats.Bytes))},
				{"Bits per word", formatBits(stats.BitsPerWord)},
			}
			if !stats.ModTime.IsZero() {
				rows = append(rows, []string{"Modified", humanize.Time(stats.ModTime)})
			}
			fmt.Fprintln(out, renderTable(fieldColumns, rows))

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			check := *cfg
			check.Wordlist.Path = list
			colorize := shouldColorize(out)
			for _, result := range preflight.RunAll(&check) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "Wordlist to inspect (default: wordlist.path from config)")
	return cmd
}
