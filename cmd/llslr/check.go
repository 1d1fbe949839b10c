package main

import (
	"fmt"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/ll"
	"github.com/npillmayer/llslr/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <grammar file path>",
		Short:   "Tell whether a grammar is LL(1) and/or SLR(1)",
		Example: `  llslr check expr.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readGrammarFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read grammar: %w", err)
	}
	llp, err := ll.NewParser(g)
	if err != nil {
		return err
	}
	slrp, err := slr.NewParser(g)
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println("Grammar " + g.Name)
	pterm.Println(g.String())
	ga := llp.Analysis()
	data := pterm.TableData{{"", "FIRST", "FOLLOW"}}
	for _, A := range g.NonTerminals() {
		data = append(data, []string{A.String(), setString(ga.First(A)), setString(ga.Follow(A))})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.DefaultSection.Println("Classification")
	if llp.IsLL1() {
		pterm.Success.Println("Grammar is LL(1).")
	} else {
		pterm.Warning.Println("Grammar is not LL(1).")
		for _, c := range llp.Table().Conflicts() {
			pterm.Println("  LL(1) conflict at " + c.String())
		}
	}
	if slrp.IsSLR1() {
		pterm.Success.Println("Grammar is SLR(1).")
	} else {
		pterm.Warning.Println("Grammar is not SLR(1).")
		for _, c := range slrp.TableGenerator().Conflicts() {
			pterm.Println("  SLR(1) conflict in " + c.String())
		}
	}
	return nil
}

func setString(syms []llslr.Symbol) string {
	s := "{"
	for i, sym := range syms {
		if i > 0 {
			s += ", "
		}
		s += sym.String()
	}
	return s + "}"
}
