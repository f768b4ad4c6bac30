// ABOUTME: Content-addressed image store backed by a chromem-go vector index.
// ABOUTME: Deduplicates by sha256, persists PNGs named by hash, serves nearest-neighbor search.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philippgille/chromem-go"
)

// Dimension every stored or queried vector must have. It matches the
// embedding model's output; mixing dimensionalities would make the index's
// distances meaningless, so it is enforced here at the store boundary.
const Dimension = 4096

const collectionName = "images"

var (
	// ErrNoResults indicates a search against an empty store.
	ErrNoResults = errors.New("no matching images in the store")
	// ErrCorruptedRecord indicates a record whose backing PNG file is gone.
	ErrCorruptedRecord = errors.New("stored record points at a missing image file")
	// ErrBadDimension indicates a vector of the wrong length.
	ErrBadDimension = fmt.Errorf("embedding must have exactly %d dimensions", Dimension)
)

// Record is one stored image: content hash, description, embedding, and the
// path of the PNG file on disk.
type Record struct {
	Hash        string
	Description string
	Path        string
	Embedding   []float32
}

// Store persists PNG files under images/ and their vectors in a chromem-go
// collection under index/. Every insert is written to disk immediately, so a
// record is visible to any later process.
type Store struct {
	imagesDir  string
	collection *chromem.Collection
}

// Open creates or opens the store rooted at dataDir.
func Open(dataDir string) (*Store, error) {
	imagesDir := filepath.Join(dataDir, "images")
	if err := os.MkdirAll(imagesDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	db, err := chromem.NewPersistentDB(filepath.Join(dataDir, "index"), false)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector index: %w", err)
	}

	// Embeddings always arrive precomputed from the remote model; the
	// collection must never fall back to computing its own.
	coll, err := db.GetOrCreateCollection(collectionName, nil, func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embeddings are computed by the remote model")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}

	return &Store{imagesDir: imagesDir, collection: coll}, nil
}

// Hash returns the content hash used as the deduplication key.
func Hash(png []byte) string {
	sum := sha256.Sum256(png)
	return hex.EncodeToString(sum[:])
}

// ImagePath returns the deterministic path for a hash's PNG file.
func (s *Store) ImagePath(hash string) string {
	return filepath.Join(s.imagesDir, hash+".png")
}

// Has reports whether a record with this hash already exists.
func (s *Store) Has(hash string) bool {
	_, err := s.collection.GetByID(context.Background(), hash)
	return err == nil
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	return s.collection.Count()
}

// Insert stores the PNG and its record. Inserting an existing hash is a
// no-op returning inserted=false.
func (s *Store) Insert(ctx context.Context, hash, description string, embedding []float32, png []byte) (bool, error) {
	if len(embedding) != Dimension {
		return false, ErrBadDimension
	}
	if s.Has(hash) {
		return false, nil
	}

	path := s.ImagePath(hash)
	if err := os.WriteFile(path, png, 0600); err != nil {
		return false, fmt.Errorf("failed to write image: %w", err)
	}

	err := s.collection.AddDocument(ctx, chromem.Document{
		ID:        hash,
		Content:   description,
		Embedding: embedding,
		Metadata:  map[string]string{"path": path},
	})
	if err != nil {
		// Keep the images directory consistent with the index.
		_ = os.Remove(path)
		return false, fmt.Errorf("failed to index image: %w", err)
	}

	return true, nil
}

// Search returns the single nearest record by cosine similarity, or
// ErrNoResults when the store is empty. Ties between equally similar records
// resolve to whichever result the index returns first.
func (s *Store) Search(ctx context.Context, embedding []float32) (*Record, error) {
	if len(embedding) != Dimension {
		return nil, ErrBadDimension
	}
	if s.collection.Count() == 0 {
		return nil, ErrNoResults
	}

	results, err := s.collection.QueryEmbedding(ctx, embedding, 1, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	r := results[0]
	return &Record{
		Hash:        r.ID,
		Description: r.Content,
		Path:        r.Metadata["path"],
		Embedding:   r.Embedding,
	}, nil
}

// ReadImage loads the PNG bytes backing a record. A missing file is a
// corrupted record, not a silent miss: there is no secondary candidate list.
func (s *Store) ReadImage(rec *Record) ([]byte, error) {
	png, err := os.ReadFile(rec.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCorruptedRecord, rec.Path)
		}
		return nil, err
	}
	return png, nil
}
