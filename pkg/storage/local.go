package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files below a root directory.
type Local struct {
	root    string
	baseURL string
}

// NewLocal resolves root against the working directory.
func NewLocal(root, baseURL string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage/local: resolve %s: %w", root, err)
	}
	return &Local{root: abs, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// abs rejects paths escaping the root.
func (d *Local) abs(path string) (string, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path))
	if full != d.root && !strings.HasPrefix(full, d.root+string(filepath.Separator)) {
		return "", fmt.Errorf("storage/local: %q escapes the disk root", path)
	}
	return full, nil
}

// Put writes to a temporary file first so readers never see a partial one.
func (d *Local) Put(_ context.Context, path string, r io.Reader) error {
	full, err := d.abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(full), ".put-*")
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return fmt.Errorf("storage/local: rename %s: %w", path, err)
	}
	return nil
}

func (d *Local) Get(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := d.abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
	}
	if err != nil {
		return nil, fmt.Errorf("storage/local: open %s: %w", path, err)
	}
	return f, nil
}

func (d *Local) Exists(_ context.Context, path string) (bool, error) {
	full, err := d.abs(path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage/local: stat %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

func (d *Local) Delete(_ context.Context, path string) error {
	full, err := d.abs(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}
	return nil
}

func (d *Local) List(_ context.Context, dir string) ([]string, error) {
	base, err := d.abs(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	err = filepath.WalkDir(base, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() || strings.HasPrefix(e.Name(), ".put-") {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage/local: list %s: %w", dir, err)
	}
	return files, nil
}

func (d *Local) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(path, "/")
}
