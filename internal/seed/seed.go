// Package seed loads the reference data the site needs on a fresh database.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log"
	"strings"

	"nortetech-site/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed document_types.yaml
var defaultDocumentTypes []byte

type catalogFile struct {
	DocumentTypes []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"document_types"`
}

// DocumentTypeStore is the part of the document-type repository the seed needs.
type DocumentTypeStore interface {
	EnsureTitles(ctx context.Context, types []models.DocumentType) (int, error)
}

// ParseDocumentTypes decodes a catalog file. Titles must be present and unique.
func ParseDocumentTypes(r io.Reader) ([]models.DocumentType, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode document type catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.DocumentTypes))
	types := make([]models.DocumentType, 0, len(file.DocumentTypes))
	for i, entry := range file.DocumentTypes {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			return nil, fmt.Errorf("document type #%d has no title", i+1)
		}
		if seen[strings.ToLower(title)] {
			return nil, fmt.Errorf("document type %q listed twice", title)
		}
		seen[strings.ToLower(title)] = true
		types = append(types, models.DocumentType{Title: title, Description: strings.TrimSpace(entry.Description)})
	}
	return types, nil
}

// DefaultDocumentTypes returns the built-in catalog.
func DefaultDocumentTypes() ([]models.DocumentType, error) {
	return ParseDocumentTypes(bytes.NewReader(defaultDocumentTypes))
}

// SeedDocumentTypes inserts the built-in catalog entries that are missing.
func SeedDocumentTypes(ctx context.Context, store DocumentTypeStore) error {
	types, err := DefaultDocumentTypes()
	if err != nil {
		return err
	}
	added, err := store.EnsureTitles(ctx, types)
	if err != nil {
		return fmt.Errorf("seed document types: %w", err)
	}
	log.Printf("Seed: %d of %d document types added", added, len(types))
	return nil
}
