package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"wordlist/internal/wordlist"
	"wordlist/internal/workflow"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	var listFlag string
	var seed uint64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "pick COUNT",
		Short: "Pick COUNT random words and estimate their entropy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			list, err := ctx.listPath(listFlag)
			if err != nil {
				return err
			}
			mgr, _, err := ctx.manager(cmd)
			if err != nil {
				return err
			}

			req := workflow.PickRequest{List: list, Count: count}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			result, err := mgr.Pick(ctx.runContext(cmd), req)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeSampleJSON(cmd.OutOrStdout(), result.Sample)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Phrase)
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderEntropyTable(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listFlag, "list", "l", "", "Wordlist to sample (default: wordlist.path from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible pick")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func parseCount(raw string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 0 || count > wordlist.MaxCount {
		return 0, fmt.Errorf("invalid count %q: must be an integer from 0 to %d", raw, wordlist.MaxCount)
	}
	return count, nil
}

func renderEntropyTable(result workflow.PickResult) string {
	e := result.Entropy
	rows := [][]string{
		{"List size", humanize.Comma(int64(result.ListSize))},
		{"Words picked", strconv.Itoa(len(result.Words))},
		{"Bits per character", formatBits(e.BitsPerChar)},
		{"Character-based total", formatBits(e.TotalCharBits)},
		{"Bits per word", formatBits(e.BitsPerWord)},
		{"Word-based total", formatBits(e.TotalWordBits)},
	}
	return renderTable([]column{{title: "Estimate"}, {title: "Value", numeric: true}}, rows)
}

// writeSampleJSON prints sample as indented JSON followed by a newline.
func writeSampleJSON(w io.Writer, sample wordlist.Sample) error {
	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func formatBits(bits float64) string {
	return strconv.FormatFloat(bits, 'f', 2, 64)
}
