package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/npillmayer/bidivis"
	"github.com/npillmayer/bidivis/bidi"
	"github.com/spf13/cobra"
)

var (
	direction  string
	showLevels bool
	testMode   bool
)

func init() {
	VisualCmd.Flags().StringVarP(&direction, "dir", "d", "", "paragraph direction: auto, ltr or rtl (default from configuration)")
	VisualCmd.Flags().BoolVarP(&showLevels, "levels", "l", false, "print embedding levels below each paragraph")
	VisualCmd.Flags().BoolVarP(&testMode, "testing", "t", false, "treat upper case ASCII letters as right-to-left")
}

// VisualCmd is the cobra command that corresponds to the visual subcommand
var VisualCmd = &cobra.Command{
	Use:   "visual [text...]",
	Short: "`visual` prints text in visual order",
	Long:  "`visual` prints its arguments, or standard input if there are none, in visual order",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfiguration()
		if err != nil {
			return err
		}
		engine, err := bidivis.Open(conf, bidi.Testing(testMode))
		if err != nil {
			return err
		}
		defer engine.Close()
		dir := engine.Direction
		if direction != "" {
			if dir, err = bidi.ParseDirection(direction); err != nil {
				return err
			}
		}
		var input []byte
		if len(args) > 0 {
			input = []byte(strings.Join(args, " "))
		} else if input, err = ioutil.ReadAll(cmd.InOrStdin()); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if showLevels {
			return printLevels(out, engine.Resolver, input, dir)
		}
		visual, err := engine.ResolveVisualOrder(input, dir)
		if err != nil {
			return err
		}
		_, err = out.Write(visual)
		if len(args) > 0 && err == nil {
			_, err = fmt.Fprintln(out)
		}
		return err
	},
}

func printLevels(w io.Writer, rs *bidi.Resolver, input []byte, dir bidi.Direction) error {
	paras, err := rs.Paragraphs(input, dir)
	if err != nil {
		return err
	}
	for i, p := range paras {
		text := strings.TrimRight(p.Text(), "\r\n")
		var levels strings.Builder
		for _, c := range p.Chars {
			if c.Value == '\n' || c.Value == '\r' {
				continue
			}
			if levels.Len() > 0 {
				levels.WriteByte(' ')
			}
			levels.WriteString(fmt.Sprint(c.Level))
		}
		if _, err = fmt.Fprintf(w, "[%d] level %d: %s\n    %s\n", i, p.Level, text, levels.String()); err != nil {
			return err
		}
	}
	return nil
}
