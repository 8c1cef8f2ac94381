package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "gentables",
	Short: "Generate source-code tables from static reference datasets",
	Long: `gentables bundles small offline code generators. Each subcommand reads a
static reference dataset — a Unicode Character Database file, cached in the
working directory, or a built-in symbolic expression — and prints a
source-code fragment to stdout, to be pasted into another project.`,
	SilenceErrors:    true,
	SilenceUsage:     true,
	PersistentPreRun: setupTracing,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "I", "trace level (D|I|E)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setupTracing(cmd *cobra.Command, args []string) {
	logAdapter := gologadapter.GetAdapter()
	trace := logAdapter()
	trace.SetTraceLevel(traceLevel(*rootFlags.trace))
	tracing.SetTraceSelector(mytrace{tracer: trace})
	gtrace.CoreTracer = trace
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

type mytrace struct {
	tracer tracing.Trace
}

func (t mytrace) Select(string) tracing.Trace {
	return t.tracer
}
