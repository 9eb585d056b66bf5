package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cookiejar "github.com/juju/persistent-cookiejar"
)

const cookieFile = "cookies.json"

// OpenCookieJar loads the cookie jar kept under dir. Save merges the jar
// into the file, so consoles pointed at other backends keep their cookies.
// A file that does not parse is moved aside and costs the operator a login.
func OpenCookieJar(dir string) (*cookiejar.Jar, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	path := filepath.Join(dir, cookieFile)

	jar, err := cookiejar.New(&cookiejar.Options{Filename: path})
	if err == nil {
		return jar, nil
	}
	if rerr := os.Rename(path, path+".corrupt"); rerr != nil {
		return nil, errors.Join(fmt.Errorf("load cookies: %w", err), rerr)
	}
	return cookiejar.New(&cookiejar.Options{Filename: path})
}
