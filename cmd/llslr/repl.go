package main

import (
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	file *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read a grammar and answer queries interactively",
		Example: `  llslr repl
  llslr repl --file session.txt
  printf '1\nS -> aSb e\nab\n\n' | llslr repl`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
	replFlags.file = cmd.Flags().StringP("file", "f", "", "read grammar and queries from a file (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	var in lineReader
	switch {
	case *replFlags.file != "":
		f, err := os.Open(*replFlags.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = newLineScanner(f)
	case !readline.IsTerminal(int(os.Stdin.Fd())):
		in = newLineScanner(os.Stdin)
	default:
		repl, err := readline.New("llslr> ")
		if err != nil {
			tracer().Errorf(err.Error())
			return err
		}
		defer repl.Close()
		pterm.Info.Println("Welcome to llslr") // colored welcome message
		pterm.Info.Println("Enter the number of rules, then the rules. Quit with <ctrl>D")
		in = repl
	}
	s := &session{in: in, out: cmd.OutOrStdout()}
	s.run()
	return nil
}
