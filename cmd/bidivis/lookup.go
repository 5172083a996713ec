package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/bidivis"
	"github.com/npillmayer/bidivis/ucd"
	"github.com/spf13/cobra"
)

// LookupCmd is the cobra command that corresponds to the lookup subcommand
var LookupCmd = &cobra.Command{
	Use:   "lookup <hex>...",
	Short: "`lookup` prints the bidi properties of code points",
	Long:  "`lookup` prints bidi class, mirrored flag and mirrored glyph of code points given in hex",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfiguration()
		if err != nil {
			return err
		}
		engine, err := bidivis.Open(conf)
		if err != nil {
			return err
		}
		defer engine.Close()
		for _, arg := range args {
			n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToUpper(arg), "U+"), 16, 32)
			if err != nil || n > unicode.MaxRune {
				return fmt.Errorf("not a code point: %q", arg)
			}
			r := rune(n)
			props, ok := engine.Props.Lookup(r)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%U\t-\n", r)
				continue
			}
			mirrored := "N"
			if props.Mirrored {
				mirrored = "Y"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%U\t%s\t%s\t%U\n", r, ucd.ClassString(props.Class), mirrored, engine.Mirrors.Mirror(r))
		}
		return nil
	},
}
