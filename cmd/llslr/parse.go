package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/llslr/ll"
	"github.com/npillmayer/llslr/lr/slr"
	"github.com/spf13/cobra"
)

var errNeither = errors.New("grammar is neither LL(1) nor SLR(1)")

var parseFlags = struct {
	parser *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file path> <query>...",
		Short: "Parse query strings, answering yes or no for each",
		Example: `  llslr parse expr.txt 'i+i*i' '(i'
  llslr parse --parser ll ab.txt adbbcc`,
		Args: cobra.MinimumNArgs(2),
		RunE: runParse,
	}
	parseFlags.parser = cmd.Flags().StringP("parser", "p", "auto", "parser to use [auto|ll|slr]")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGrammarFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read grammar: %w", err)
	}
	var p recognizer
	switch *parseFlags.parser {
	case "ll":
		if p, err = ll.NewParser(g); err != nil {
			return err
		}
	case "slr":
		if p, err = slr.NewParser(g); err != nil {
			return err
		}
	case "auto":
		if p, err = selectParser(g); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown parser %q, use one of auto, ll, slr", *parseFlags.parser)
	}
	out := cmd.OutOrStdout()
	for _, query := range args[1:] {
		if p.Parse(query) {
			fmt.Fprintln(out, "yes")
		} else {
			fmt.Fprintln(out, "no")
		}
	}
	return nil
}

// selectParser prefers the LL(1) parser and falls back to SLR(1).
func selectParser(g *grammar.Grammar) (recognizer, error) {
	llp, err := ll.NewParser(g)
	if err != nil {
		return nil, err
	}
	if llp.IsLL1() {
		tracer().Infof("using LL(1) parser")
		return llp, nil
	}
	slrp, err := slr.NewParser(g)
	if err != nil {
		return nil, err
	}
	if slrp.IsSLR1() {
		tracer().Infof("using SLR(1) parser")
		return slrp, nil
	}
	return nil, errNeither
}
