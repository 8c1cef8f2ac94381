package ucd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// EnsureFile makes sure a local copy of a reference data file exists at
// path. If the file is absent it is fetched from url and stored verbatim;
// if it is present nothing happens. Absence of the file is the only
// trigger: there is no checksum, no expiry and no retry. Any network or
// filesystem error propagates to the caller.
func EnsureFile(path, url string) error {
	if _, err := os.Stat(path); err == nil {
		tracing.Debugf("using cached %s", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %v: %w", path, err)
	}
	tracing.Infof("downloading %s", url)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %v: unexpected status %s", url, resp.Status)
	}
	return writeFile(path, resp.Body)
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
