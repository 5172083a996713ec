package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/bidivis/config"
	"github.com/npillmayer/bidivis/internal/datagen"
	"github.com/spf13/cobra"
)

var (
	unicodeDataFile   string
	bidiMirroringFile string
	outDir            string
	fetchVersion      string
)

func init() {
	GendataCmd.Flags().StringVarP(&unicodeDataFile, "unicodedata", "u", "UnicodeData.txt", "UnicodeData.txt of the Unicode Character Database")
	GendataCmd.Flags().StringVarP(&bidiMirroringFile, "mirroring", "m", "BidiMirroring.txt", "BidiMirroring.txt of the Unicode Character Database")
	GendataCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	GendataCmd.Flags().StringVarP(&fetchVersion, "fetch", "f", "", "download the UCD files of a Unicode version (e.g. 14.0.0) instead of reading local files")
}

// GendataCmd is the cobra command that corresponds to the gendata subcommand
var GendataCmd = &cobra.Command{
	Use:   "gendata",
	Short: "`gendata` creates the data files from the Unicode Character Database",
	Long: "`gendata` copies UnicodeData.txt to the output directory and creates its index " +
		"and the binary mirroring table next to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfiguration(); err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		if fetchVersion != "" {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			paths, err := datagen.Fetch(ctx, nil, datagen.UCDURL(fetchVersion), outDir,
				config.DefaultUnicodeData, "BidiMirroring.txt")
			if err != nil {
				return err
			}
			unicodeDataFile, bidiMirroringFile = paths[0], paths[1]
		}
		data := filepath.Join(outDir, config.DefaultUnicodeData)
		if err := copyFile(unicodeDataFile, data); err != nil {
			return err
		}
		n, err := generate(data, filepath.Join(outDir, config.DefaultIndex), datagen.WriteIndex)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d property records indexed\n", n)
		n, err = generate(bidiMirroringFile, filepath.Join(outDir, config.DefaultMirroring), datagen.WriteMirrors)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d mirroring pairs written\n", n)
		return nil
	},
}

func generate(in, out string, gen func(io.Reader, io.Writer) (int, error)) (int, error) {
	src, err := os.Open(in)
	if err != nil {
		return 0, err
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	n, err := gen(src, dst)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func copyFile(from, to string) error {
	if abs1, err1 := filepath.Abs(from); err1 == nil {
		if abs2, err2 := filepath.Abs(to); err2 == nil && abs1 == abs2 {
			return nil
		}
	}
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(to)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}
