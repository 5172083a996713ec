package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/bidivis/config"
	"github.com/npillmayer/bidivis/internal/ucdtest"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// run executes the command line with fresh flag values and returns its output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	configFile, direction, showLevels, testMode = "", "", false, false
	unicodeDataFile, bidiMirroringFile, outDir, fetchVersion = "UnicodeData.txt", "BidiMirroring.txt", ".", ""
	listenAddr, serveTesting = "", false
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dataDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bidivis.yaml")
	yaml := fmt.Sprintf("data:\n  dir: %s\ntrace: info\n", dataDir)
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVisual(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	files, err := ucdtest.WriteFiles(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	conf := writeConfig(t, files.Dir)
	out, err := run(t, "", "visual", "--config", conf, "א<ב")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ב>א\n" {
		t.Errorf("unexpected output %q", out)
	}
	out, err = run(t, "car is THE CAR\n", "visual", "--config", conf, "--testing")
	if err != nil {
		t.Fatal(err)
	}
	if out != "car is RAC EHT\n" {
		t.Errorf("unexpected output for standard input %q", out)
	}
	out, err = run(t, "", "visual", "--config", conf, "--dir", "rtl", "abc")
	if err != nil {
		t.Fatal(err)
	}
	if out != "abc\n" {
		t.Errorf("unexpected output %q", out)
	}
	if _, err = run(t, "", "visual", "--config", conf, "--dir", "down", "abc"); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}

func TestVisualLevels(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	t.Setenv(config.EnvDataDir, t.TempDir())
	out, err := run(t, "", "visual", "--levels", "--testing", "abc DEF")
	if err != nil {
		t.Fatal(err)
	}
	expected := "[0] level 0: abc FED\n    0 0 0 0 1 1 1\n"
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}

func TestLookup(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	files, err := ucdtest.WriteFiles(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "lookup", "--config", writeConfig(t, files.Dir), "003C", "U+05D0", "4E00")
	if err != nil {
		t.Fatal(err)
	}
	expected := "U+003C\tON\tY\tU+003E\nU+05D0\tR\tN\tU+05D0\nU+4E00\t-\n"
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
	for _, arg := range []string{"xyz", "110000", "80000000"} {
		if _, err = run(t, "", "lookup", "--config", writeConfig(t, files.Dir), arg); err == nil {
			t.Errorf("expected error for invalid code point %s", arg)
		}
	}
}

func TestGendata(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	src := t.TempDir()
	unicodeData := filepath.Join(src, "UnicodeData.txt")
	mirroring := filepath.Join(src, "BidiMirroring.txt")
	if err := os.WriteFile(unicodeData, []byte(ucdtest.UnicodeData), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mirroring, []byte(ucdtest.BidiMirroring), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(t.TempDir(), "data")
	conf := writeConfig(t, dst)
	out, err := run(t, "", "gendata", "--config", conf, "--unicodedata", unicodeData, "--mirroring", mirroring, "--out", dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mirroring pairs written") {
		t.Errorf("unexpected output %q", out)
	}
	for _, name := range []string{config.DefaultUnicodeData, config.DefaultIndex, config.DefaultMirroring} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("expected %s to be generated: %v", name, err)
		}
	}
	out, err = run(t, "", "visual", "--config", conf, "«אב»")
	if err != nil {
		t.Fatal(err)
	}
	if out != "«בא»\n" {
		t.Errorf("unexpected output with generated data %q", out)
	}
}
