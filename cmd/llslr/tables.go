package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/llslr"
	"github.com/npillmayer/llslr/ll"
	"github.com/npillmayer/llslr/lr"
	"github.com/npillmayer/llslr/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tablesFlags = struct {
	html *string
	dot  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "tables <grammar file path>",
		Short: "Print the LL(1) table and the SLR(1) ACTION and GOTO tables",
		Example: `  llslr tables expr.txt
  llslr tables --html expr.html --dot expr.dot expr.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runTables,
	}
	tablesFlags.html = cmd.Flags().String("html", "", "export ACTION and GOTO tables to an HTML file")
	tablesFlags.dot = cmd.Flags().String("dot", "", "export the CFSM to a Graphviz file")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
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
	pterm.DefaultSection.Println("LL(1) table")
	if err := renderTable(llTableData(llp.Table())); err != nil {
		return err
	}
	lrgen := slrp.TableGenerator()
	pterm.DefaultSection.Printf("SLR(1) tables, %d states\n", lrgen.CFSM().Size())
	if err := renderTable(lrTableData(lrgen)); err != nil {
		return err
	}
	if *tablesFlags.html != "" {
		if err := exportHTML(lrgen, *tablesFlags.html); err != nil {
			return err
		}
	}
	if *tablesFlags.dot != "" {
		if err := exportDot(lrgen, *tablesFlags.dot); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(data pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func llTableData(t *ll.Table) pterm.TableData {
	header := []string{""}
	for _, a := range t.Terminals() {
		header = append(header, a.String())
	}
	data := pterm.TableData{header}
	for _, A := range t.NonTerminals() {
		row := []string{A.String()}
		for _, a := range t.Terminals() {
			row = append(row, t.CellString(A, a))
		}
		data = append(data, row)
	}
	return data
}

// lrTableData puts ACTION and GOTO side by side: terminal columns hold
// actions, non-terminal columns hold GOTO targets.
func lrTableData(lrgen *lr.TableGenerator) pterm.TableData {
	var terms, nonterms []llslr.Symbol
	for _, X := range lrgen.ActionTable().Columns() {
		if !X.IsNonTerminal() {
			terms = append(terms, X)
		} else if X != lrgen.Grammar().Start() {
			nonterms = append(nonterms, X)
		}
	}
	header := []string{"state"}
	for _, X := range append(terms, nonterms...) {
		header = append(header, X.String())
	}
	data := pterm.TableData{header}
	for _, state := range lrgen.CFSM().States() {
		row := []string{strconv.Itoa(state.ID)}
		for _, a := range terms {
			row = append(row, lrgen.ActionCell(state.ID, a))
		}
		for _, A := range nonterms {
			row = append(row, lrgen.GotoCell(state.ID, A))
		}
		data = append(data, row)
	}
	return data
}

func exportHTML(lrgen *lr.TableGenerator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := lr.ActionTableAsHTML(lrgen, f); err != nil {
		return err
	}
	if err := lr.GotoTableAsHTML(lrgen, f); err != nil {
		return err
	}
	pterm.Info.Println("tables written to " + path)
	return nil
}

func exportDot(lrgen *lr.TableGenerator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := lrgen.CFSM().CFSM2GraphViz(f); err != nil {
		return err
	}
	pterm.Info.Println("CFSM written to " + path)
	return nil
}
