// Package blob keeps uploaded files (résumés, onboarding documents) on an afero
// filesystem and checks what they really contain before accepting them.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var (
	ErrEmpty           = errors.New("file is empty")
	ErrTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedType = errors.New("file type not allowed")
	ErrInvalidKey      = errors.New("invalid file key")
	ErrNotFound        = errors.New("file not found")
)

// File is a stored upload opened for download. The caller closes it.
type File struct {
	io.ReadCloser
	Filename    string
	Size        int64
	ContentType string
}

// Store saves uploads under a root directory of fs.
type Store struct {
	fs       afero.Fs
	maxBytes int64
	allowed  []string
}

// NewStore returns a Store rooted at root on fs. allowed lists the accepted MIME
// types when Save is called without its own list.
func NewStore(fs afero.Fs, root string, maxBytes int64, allowed []string) *Store {
	if root != "" && root != "." {
		fs = afero.NewBasePathFs(fs, root)
	}
	return &Store{fs: fs, maxBytes: maxBytes, allowed: allowed}
}

// NewOsStore returns a Store on the local disk.
func NewOsStore(root string, maxBytes int64, allowed []string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads root %s: %w", root, err)
	}
	return NewStore(afero.NewOsFs(), root, maxBytes, allowed), nil
}

// Save reads r, checks its size and sniffed type, and writes it under dir with a
// random name and the extension of the detected type. It returns the file key.
func (s *Store) Save(ctx context.Context, dir string, r io.Reader, allowed ...string) (string, error) {
	if len(allowed) == 0 {
		allowed = s.allowed
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrTooLarge, s.maxBytes)
	}

	mt := mimetype.Detect(data)
	if !isAllowed(mt, allowed) {
		log.Printf("Save: rejected upload of type %s into %s", mt.String(), dir)
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := path.Join(cleanDir(dir), uuid.NewString()+mt.Extension())
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := afero.WriteReader(s.fs, key, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("write upload %s: %w", key, err)
	}

	log.Printf("Save: stored %s (%s, %d bytes)", key, mt.String(), len(data))
	return key, nil
}

// Open returns the stored file with its size and sniffed content type.
func (s *Store) Open(ctx context.Context, key string) (*File, error) {
	if !validKey(key) {
		return nil, ErrInvalidKey
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fs.Open(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("open upload %s: %w", key, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat upload %s: %w", key, err)
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("sniff upload %s: %w", key, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rewind upload %s: %w", key, err)
	}

	return &File{ReadCloser: f, Filename: path.Base(key), Size: info.Size(), ContentType: mt.String()}, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if !validKey(key) {
		return ErrInvalidKey
	}
	if err := s.fs.Remove(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete upload %s: %w", key, err)
	}
	return nil
}

func isAllowed(mt *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mt.Is(a) {
			return true
		}
	}
	return false
}

// cleanDir keeps dir relative and inside the root.
func cleanDir(dir string) string {
	cleaned := path.Clean("/" + dir)
	return strings.TrimPrefix(cleaned, "/")
}

func validKey(key string) bool {
	return key != "" && !strings.HasPrefix(key, "/") && cleanDir(key) == key
}
