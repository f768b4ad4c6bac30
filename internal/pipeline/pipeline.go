// ABOUTME: Save and load pipelines connecting clipboard, OpenRouter, and the store.
// ABOUTME: All collaborators are injected as interfaces so tests can run with fakes.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/imagedb/imagedb/internal/clipboard"
	"github.com/imagedb/imagedb/internal/store"
)

// Describer turns image bytes into a natural-language description.
type Describer interface {
	DescribeImage(ctx context.Context, png []byte, extra string) (string, error)
}

// Embedder turns text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Store is the persistence surface the pipelines need.
type Store interface {
	Has(hash string) bool
	Insert(ctx context.Context, hash, description string, embedding []float32, png []byte) (bool, error)
	Search(ctx context.Context, embedding []float32) (*store.Record, error)
	ReadImage(rec *store.Record) ([]byte, error)
	ImagePath(hash string) string
}

// Pipeline orchestrates one save or load command end to end.
type Pipeline struct {
	Clipboard clipboard.Clipboard
	Describer Describer
	Embedder  Embedder
	Store     Store
}

// SaveResult reports what a save did.
type SaveResult struct {
	Hash        string
	Description string
	Path        string
	Duplicate   bool
}

// LoadResult reports which record a load copied to the clipboard.
type LoadResult struct {
	Hash        string
	Description string
	Path        string
}

// Save reads the clipboard image, describes and embeds it, and stores the
// record. Any API failure aborts with nothing persisted.
func (p *Pipeline) Save(ctx context.Context, extra string) (*SaveResult, error) {
	data, err := p.Clipboard.ReadImage()
	if err != nil {
		return nil, err
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: clipboard content is not a PNG image", clipboard.ErrNoImage)
	}

	hash := store.Hash(data)
	if p.Store.Has(hash) {
		// Identical bytes were saved before; skip the API calls entirely.
		return &SaveResult{Hash: hash, Path: p.Store.ImagePath(hash), Duplicate: true}, nil
	}

	description, err := p.Describer.DescribeImage(ctx, data, extra)
	if err != nil {
		return nil, err
	}

	embedding, err := p.Embedder.Embed(ctx, description)
	if err != nil {
		return nil, err
	}

	if _, err := p.Store.Insert(ctx, hash, description, embedding, data); err != nil {
		return nil, err
	}

	return &SaveResult{Hash: hash, Description: description, Path: p.Store.ImagePath(hash)}, nil
}

// Search embeds the query and returns the closest stored record without
// touching the clipboard.
func (p *Pipeline) Search(ctx context.Context, query string) (*store.Record, error) {
	embedding, err := p.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return p.Store.Search(ctx, embedding)
}

// Load finds the closest stored image for the query and writes its PNG bytes
// to the clipboard. The clipboard is untouched on any failure.
func (p *Pipeline) Load(ctx context.Context, query string) (*LoadResult, error) {
	rec, err := p.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	data, err := p.Store.ReadImage(rec)
	if err != nil {
		return nil, err
	}

	if err := p.Clipboard.WriteImage(data); err != nil {
		return nil, err
	}

	return &LoadResult{Hash: rec.Hash, Description: rec.Description, Path: rec.Path}, nil
}
