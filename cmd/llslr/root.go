package main

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/llslr/grammar"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "llslr",
	Short: "Analyse LL(1) and SLR(1) grammars and parse queries",
	Long: `llslr reads a context-free grammar over single-character symbols,
decides whether it is LL(1) and/or SLR(1), and parses query strings
with a predictive LL(1) parser or an SLR(1) shift-reduce parser.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		initTracing(*rootFlags.trace)
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// traceKeys are the tracers of all packages of this module.
var traceKeys = []string{
	"llslr.cli",
	"llslr.grammar",
	"llslr.ll",
	"llslr.lr",
	"llslr.scanner",
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := traceLevel(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("Trace level is %s", level)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// readGrammarFile reads a grammar in line format from a file.
func readGrammarFile(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grammar.Read(filepath.Base(path), f)
}
