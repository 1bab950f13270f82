package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nortetech-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	got []models.DocumentType
	err error
}

func (f *fakeStore) EnsureTitles(_ context.Context, types []models.DocumentType) (int, error) {
	f.got = types
	return len(types), f.err
}

func TestDefaultDocumentTypes(t *testing.T) {
	types, err := DefaultDocumentTypes()
	require.NoError(t, err)
	require.Len(t, types, 6)
	assert.Equal(t, "RG (Identidade)", types[0].Title)
	assert.Equal(t, "CPF", types[1].Title)
	assert.NotEmpty(t, types[5].Description)
}

func TestParseDocumentTypes_Errors(t *testing.T) {
	_, err := ParseDocumentTypes(strings.NewReader("document_types:\n  - description: no title\n"))
	assert.ErrorContains(t, err, "has no title")

	_, err = ParseDocumentTypes(strings.NewReader("document_types:\n  - title: CPF\n  - title: cpf\n"))
	assert.ErrorContains(t, err, "listed twice")

	_, err = ParseDocumentTypes(strings.NewReader("document_types:\n  - title: CPF\n    mandatory: true\n"))
	assert.Error(t, err)
}

func TestSeedDocumentTypes(t *testing.T) {
	store := &fakeStore{}
	require.NoError(t, SeedDocumentTypes(context.Background(), store))
	assert.Len(t, store.got, 6)

	store = &fakeStore{err: errors.New("db down")}
	assert.ErrorContains(t, SeedDocumentTypes(context.Background(), store), "db down")
}
