package datagen

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// UCDURL returns the location of the zipped Unicode Character Database of a
// Unicode version, e.g. "14.0.0".
func UCDURL(version string) string {
	return "https://www.unicode.org/Public/" + version + "/ucd/UCD.zip"
}

// NewClient returns an HTTP client which retries failed downloads with
// exponential backoff and logs to the package tracer.
func NewClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.Logger = traceLogger{}
	return client
}

// Fetch downloads a zipped Unicode Character Database from url and extracts
// the files with the given base names into dir. It returns the paths of the
// extracted files, in the order of names. A nil client defaults to NewClient().
func Fetch(ctx context.Context, client *retryablehttp.Client, url, dir string, names ...string) ([]string, error) {
	if client == nil {
		client = NewClient()
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	T().Infof("downloading %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to extract: %w", err)
	}
	wanted := make(map[string]int, len(names))
	for i, name := range names {
		wanted[name] = i
	}
	paths := make([]string, len(names))
	for _, file := range z.File {
		if file.FileInfo().IsDir() {
			continue
		}
		i, ok := wanted[path.Base(file.Name)]
		if !ok || paths[i] != "" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %v: %w", file.Name, err)
		}
		target := filepath.Join(dir, names[i])
		if err := writeFile(target, rc); err != nil {
			return nil, fmt.Errorf("failed to write %v: %w", file.Name, err)
		}
		paths[i] = target
	}
	for i, p := range paths {
		if p == "" {
			return nil, fmt.Errorf("%s not found in %s", names[i], url)
		}
	}
	return paths, nil
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	if _, err = io.Copy(f, rc); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}

// traceLogger adapts the package tracer to retryablehttp.LeveledLogger.
type traceLogger struct{}

var _ retryablehttp.LeveledLogger = traceLogger{}

func (traceLogger) Error(msg string, kv ...interface{}) { T().Errorf("%s%s", msg, keyvals(kv)) }
func (traceLogger) Info(msg string, kv ...interface{})  { T().Infof("%s%s", msg, keyvals(kv)) }
func (traceLogger) Debug(msg string, kv ...interface{}) { T().Debugf("%s%s", msg, keyvals(kv)) }
func (traceLogger) Warn(msg string, kv ...interface{})  { T().Infof("%s%s", msg, keyvals(kv)) }

func keyvals(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
