// Package ucdtest provides excerpts of Unicode Character Database files and
// creates the binary data files from them, for use in tests.
package ucdtest

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/bidivis/internal/datagen"
)

// UnicodeData is an excerpt of UnicodeData.txt, covering ASCII, some Latin-1,
// Hebrew, Arabic and the explicit formatting characters.
//
//go:embed UnicodeData.txt
var UnicodeData string

// BidiMirroring is an excerpt of BidiMirroring.txt.
//
//go:embed BidiMirroring.txt
var BidiMirroring string

// Files holds the paths of data files created by WriteFiles.
type Files struct {
	Dir         string
	UnicodeData string
	Index       string
	Mirroring   string
}

// Standard file names within a data directory.
const (
	UnicodeDataName = "UnicodeData.txt"
	IndexName       = "UnicodeData.idx"
	MirroringName   = "BidiMirroring.dat"
)

// WriteFiles writes UnicodeData.txt, its index and the mirroring table to dir.
func WriteFiles(dir string) (Files, error) {
	files := Files{
		Dir:         dir,
		UnicodeData: filepath.Join(dir, UnicodeDataName),
		Index:       filepath.Join(dir, IndexName),
		Mirroring:   filepath.Join(dir, MirroringName),
	}
	if err := os.WriteFile(files.UnicodeData, []byte(UnicodeData), 0644); err != nil {
		return files, err
	}
	idx, err := os.Create(files.Index)
	if err != nil {
		return files, err
	}
	defer idx.Close()
	if _, err = datagen.WriteIndex(strings.NewReader(UnicodeData), idx); err != nil {
		return files, err
	}
	mirr, err := os.Create(files.Mirroring)
	if err != nil {
		return files, err
	}
	defer mirr.Close()
	_, err = datagen.WriteMirrors(strings.NewReader(BidiMirroring), mirr)
	return files, err
}
