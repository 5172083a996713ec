package bidivis

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bidivis/bidi"
	"github.com/npillmayer/bidivis/config"
	"github.com/npillmayer/bidivis/mirror"
	"github.com/npillmayer/bidivis/ucd"
)

// ErrIncompleteData is returned by Open if only one of the property data file
// and its index is present.
var ErrIncompleteData = errors.New("property data file and index must be present together")

// Engine is a bidi resolver together with the data files it reads from.
type Engine struct {
	*bidi.Resolver
	Direction bidi.Direction // default paragraph direction
	Props     ucd.Source
	Mirrors   mirror.Mirrorer
	closers   []io.Closer
}

// Open creates an engine from a configuration. A nil configuration is
// config.Default(). Data files missing from the configured locations are
// replaced by in-process tables, see ucd.TextSource and mirror.Basic.
func Open(conf *config.Configuration, opts ...bidi.Option) (*Engine, error) {
	if conf == nil {
		conf = config.Default()
	}
	dir, err := bidi.ParseDirection(string(conf.Direction))
	if err != nil {
		return nil, err
	}
	e := &Engine{Direction: dir}
	if e.Props, err = openProperties(conf); err != nil {
		return nil, err
	}
	if st, ok := e.Props.(*ucd.Store); ok {
		e.closers = append(e.closers, st)
	}
	if e.Mirrors, err = openMirrors(conf); err != nil {
		e.Close()
		return nil, err
	}
	if t, ok := e.Mirrors.(*mirror.Table); ok {
		e.closers = append(e.closers, t)
	}
	e.Resolver = bidi.NewResolver(e.Props, e.Mirrors, opts...)
	return e, nil
}

func openProperties(conf *config.Configuration) (ucd.Source, error) {
	data, index := conf.UnicodeDataPath(), conf.IndexPath()
	hasData, hasIndex := exists(data), exists(index)
	if !hasData && !hasIndex {
		T().Infof("no property data in %s, using built-in tables", conf.Data.Dir)
		return ucd.TextSource{}, nil
	}
	if !hasData || !hasIndex {
		return nil, fmt.Errorf("%w: %s, %s", ErrIncompleteData, data, index)
	}
	T().Infof("reading properties from %s", data)
	return ucd.Open(index, data, ucd.WithCacheSize(conf.Cache.Size))
}

func openMirrors(conf *config.Configuration) (mirror.Mirrorer, error) {
	path := conf.MirroringPath()
	if !exists(path) {
		T().Infof("no mirroring data in %s, using built-in pairs", conf.Data.Dir)
		return mirror.Basic(), nil
	}
	T().Infof("reading mirrored glyphs from %s", path)
	return mirror.Open(path, mirror.WithCacheSize(conf.Cache.Size))
}

func exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// Visual converts s to visual order, using the engine's default direction.
func (e *Engine) Visual(s string) (string, error) {
	return e.ToVisual(s, e.Direction)
}

// Close releases the data files of the engine.
func (e *Engine) Close() error {
	var first error
	for _, c := range e.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	e.closers = nil
	return first
}
