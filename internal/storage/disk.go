package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves uploaded files and returns a publicly resolvable URL for
// each. The interface keeps a bucket-style backend swappable; Disk is
// the implementation the API serves itself under /media.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Disk struct {
	root    string
	urlHost string
}

func NewDisk(root, urlHost string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Disk{root: root, urlHost: strings.TrimRight(urlHost, "/")}, nil
}

func (d *Disk) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + sanitizeExt(filename)
	path := filepath.Join(d.root, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close upload: %w", err)
	}
	return d.urlHost + "/media/" + name, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return ext
	default:
		return ""
	}
}
