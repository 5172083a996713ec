package bidivis

import (
	"errors"
	"os"
	"testing"

	"github.com/npillmayer/bidivis/bidi"
	"github.com/npillmayer/bidivis/config"
	"github.com/npillmayer/bidivis/internal/ucdtest"
	"github.com/npillmayer/bidivis/mirror"
	"github.com/npillmayer/bidivis/ucd"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOpenWithDataFiles(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	files, err := ucdtest.WriteFiles(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	conf := config.Default()
	conf.Data.Dir = files.Dir
	conf.Direction = "rtl"
	engine, err := Open(conf)
	if err != nil {
		t.Fatal(err)
	}
	defer engine.Close()
	if _, ok := engine.Props.(*ucd.Store); !ok {
		t.Errorf("expected properties to be read from data files, have %T", engine.Props)
	}
	if _, ok := engine.Mirrors.(*mirror.Table); !ok {
		t.Errorf("expected mirrors to be read from data files, have %T", engine.Mirrors)
	}
	// '<' is mirrored in the data files, but not a bracket
	visual, err := engine.Visual("א<ב")
	if err != nil {
		t.Fatal(err)
	}
	if visual != "ב>א" {
		t.Errorf("expected %q, have %q", "ב>א", visual)
	}
}

func TestOpenFallback(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	conf := config.Default()
	conf.Data.Dir = t.TempDir()
	engine, err := Open(conf, bidi.Testing(true))
	if err != nil {
		t.Fatal(err)
	}
	defer engine.Close()
	if _, ok := engine.Props.(ucd.TextSource); !ok {
		t.Errorf("expected built-in properties, have %T", engine.Props)
	}
	if engine.Direction != bidi.Auto {
		t.Errorf("expected default direction auto, have %s", engine.Direction)
	}
	visual, err := engine.Visual("car is THE CAR in arabic")
	if err != nil {
		t.Fatal(err)
	}
	if visual != "car is RAC EHT in arabic" {
		t.Errorf("unexpected visual order %q", visual)
	}
	if err := engine.Close(); err != nil {
		t.Errorf("closing twice: %v", err)
	}
}

func TestOpenIncompleteData(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	files, err := ucdtest.WriteFiles(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(files.Index); err != nil {
		t.Fatal(err)
	}
	conf := config.Default()
	conf.Data.Dir = files.Dir
	if _, err := Open(conf); !errors.Is(err, ErrIncompleteData) {
		t.Errorf("expected incomplete data error, have %v", err)
	}
	conf.Data.Dir = t.TempDir()
	conf.Direction = "sideways"
	if _, err := Open(conf); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}

func TestOpenNilConfiguration(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	engine, err := Open(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer engine.Close()
	if engine.Resolver == nil {
		t.Errorf("expected a resolver")
	}
}
