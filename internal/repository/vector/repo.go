// Package vector maintains the FT vector index over FAQ hashes and runs
// nearest-neighbor lookups against it.
package vector

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/db"
	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

// IndexName is the FT index over FAQ hashes.
const IndexName = domain.KeyPrefix + "faq:idx"

// store is the consumer interface for vector indexing (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements usecase/faq.VectorIndexer and usecase/ask.VectorSearcher.
type Repo struct {
	store store
	dims  int
}

// New creates a vector repository. dims is the embedding dimensionality
// every stored and queried vector must have.
func New(s store, dims int) *Repo {
	return &Repo{store: s, dims: dims}
}

// EnsureIndex creates the FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, IndexName)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     IndexName,
		Prefixes: []string{domain.KeyPrefix + "faq:"},
		Fields: []db.IndexField{
			{Name: "question", Type: db.IndexFieldText},
			{
				Name:           db.VectorField,
				Type:           db.IndexFieldVector,
				VectorAlgo:     db.VectorFlat,
				VectorDim:      r.dims,
				VectorDistance: db.DistanceCosine,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil // lost a create race, index is there
		}
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Index attaches an embedding to a stored FAQ hash. The entry itself must
// already be saved; a failed Index leaves the lexical data intact.
func (r *Repo) Index(ctx context.Context, id string, vector []float32) error {
	if len(vector) != r.dims {
		return fmt.Errorf("index faq %s: got %d dims, want %d: %w",
			id, len(vector), r.dims, domain.ErrVectorDimMismatch)
	}

	key := domain.KeyPrefix + "faq:" + id
	fields := map[string]string{db.VectorField: vectorBlob(vector)}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("index faq %s: %w", id, err)
	}
	return nil
}

// Nearest returns the single closest FAQ answer for the query vector.
// An empty index is a normal Found=false outcome, not an error.
func (r *Repo) Nearest(ctx context.Context, vector []float32) (domain.Lookup, error) {
	if len(vector) != r.dims {
		return domain.Lookup{}, fmt.Errorf("nearest: got %d dims, want %d: %w",
			len(vector), r.dims, domain.ErrVectorDimMismatch)
	}

	result, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    IndexName,
		Vector:       vector,
		K:            1,
		ReturnFields: []string{"answer"},
	})
	if err != nil {
		return domain.Lookup{}, fmt.Errorf("knn search: %w", err)
	}

	if result == nil || len(result.Entries) == 0 {
		return domain.Lookup{}, nil
	}

	entry := result.Entries[0]
	return domain.Lookup{
		Answer: entry.Fields["answer"],
		Score:  entry.Score,
		Found:  true,
	}, nil
}

func vectorBlob(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
