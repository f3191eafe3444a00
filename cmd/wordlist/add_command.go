package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"wordlist/internal/workflow"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "add [SOURCE...]",
		Short: "Merge words from files (or stdin) into the wordlist",
		Long: `Merge words from the given sources into the wordlist.

Each SOURCE is a file path or a glob pattern ("notes/**/*.md"). With no
sources, text is read from standard input. Unreadable sources are reported
and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			target, err := ctx.listPath(output)
			if err != nil {
				return err
			}
			mgr, _, err := ctx.manager(cmd)
			if err != nil {
				return err
			}

			result, err := mgr.Add(ctx.runContext(cmd), workflow.AddRequest{Sources: args, Target: target})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range addSummaryLines(result, colorize) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Wordlist to update (default: wordlist.path from config)")
	return cmd
}

func addSummaryLines(result workflow.AddResult, colorize bool) []string {
	lines := []string{renderStatusLine("Wordlist", statusOK, result.Target, colorize)}

	sourceKind := statusOK
	sourceMsg := fmt.Sprintf("%s read", humanize.Comma(int64(result.Sources)))
	if result.Skipped > 0 {
		sourceKind = statusWarn
		names := make([]string, 0, len(result.Failures))
		for _, failure := range result.Failures {
			names = append(names, failure.Name)
		}
		sourceMsg = fmt.Sprintf("%s, %s skipped (%s)", sourceMsg, humanize.Comma(int64(result.Skipped)), strings.Join(names, ", "))
	}
	lines = append(lines, renderStatusLine("Sources", sourceKind, sourceMsg, colorize))

	wordsMsg := fmt.Sprintf("%s -> %s (%+d)",
		humanize.Comma(int64(result.WordsBefore)),
		humanize.Comma(int64(result.WordsAfter)),
		result.Added(),
	)
	lines = append(lines, renderStatusLine("Words", statusInfo, wordsMsg, colorize))
	return lines
}
