/*
Command bidivis converts text to visual order and prepares the data files it
needs.

    bidivis visual --dir rtl "abc שלום def"
    echo "car is THE CAR" | bidivis visual
    bidivis gendata --unicodedata UnicodeData.txt --mirroring BidiMirroring.txt --out /usr/local/share/bidivis
    bidivis lookup 05D0 0028
    bidivis serve --addr :5080
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/bidivis/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var configFile string

// RootCmd is the main command for the 'bidivis' binary.
var RootCmd = &cobra.Command{
	Use:           "bidivis",
	Short:         "`bidivis` converts text from logical to visual order",
	Long:          "`bidivis` converts text from logical to visual order, following the Unicode Bidirectional Algorithm",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file (YAML)")
	RootCmd.AddCommand(VisualCmd)
	RootCmd.AddCommand(GendataCmd)
	RootCmd.AddCommand(LookupCmd)
	RootCmd.AddCommand(ServeCmd)
}

// loadConfiguration reads the configuration and sets up tracing accordingly.
func loadConfiguration() (*config.Configuration, error) {
	conf, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	gtrace.CoreTracer.SetTraceLevel(conf.Trace.Level())
	return conf, nil
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "bidivis: %v\n", err)
		os.Exit(1)
	}
}
