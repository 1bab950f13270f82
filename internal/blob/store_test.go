package blob

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
)

func newTestStore(maxBytes int64) (*Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewStore(fs, "media", maxBytes, []string{"application/pdf", "image/jpeg", "image/png"}), fs
}

func TestSave_AcceptsSniffedTypes(t *testing.T) {
	store, fs := newTestStore(1 << 20)
	ctx := context.Background()

	key, err := store.Save(ctx, "candidates/c1/d1", bytes.NewReader(pdfBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "candidates/c1/d1/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	stored, err := afero.ReadFile(fs, "media/"+key)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, stored)

	key, err = store.Save(ctx, "candidates/c1/d2", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))
}

func TestSave_RejectsDisguisedFile(t *testing.T) {
	store, _ := newTestStore(1 << 20)

	_, err := store.Save(context.Background(), "x", strings.NewReader("just some text pretending to be a pdf"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSave_PerCallAllowList(t *testing.T) {
	store, _ := newTestStore(1 << 20)

	_, err := store.Save(context.Background(), "resumes", bytes.NewReader(pngBytes), "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSave_SizeAndEmpty(t *testing.T) {
	store, _ := newTestStore(16)
	ctx := context.Background()

	_, err := store.Save(ctx, "x", bytes.NewReader(pdfBytes))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = store.Save(ctx, "x", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSave_KeepsKeysInsideRoot(t *testing.T) {
	store, fs := newTestStore(1 << 20)

	key, err := store.Save(context.Background(), "../../etc", bytes.NewReader(pdfBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "etc/"))

	exists, err := afero.Exists(fs, "media/"+key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOpenAndDelete(t *testing.T) {
	store, _ := newTestStore(1 << 20)
	ctx := context.Background()

	key, err := store.Save(ctx, "resumes/u1", bytes.NewReader(pdfBytes))
	require.NoError(t, err)

	f, err := store.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", f.ContentType)
	assert.Equal(t, int64(len(pdfBytes)), f.Size)
	assert.Equal(t, path.Base(key), f.Filename)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, content, "the content is read from the start after sniffing")
	require.NoError(t, f.Close())

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, ""))

	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Open(ctx, "../secret")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
