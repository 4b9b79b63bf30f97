package db

// Reserved hash field names used by vector search.
const (
	// VectorField is the hash field holding the binary FLOAT32 embedding.
	VectorField = "__vector"
	// VectorScoreField is the distance field FT.SEARCH adds to KNN hits.
	VectorScoreField = "__vector_score"
)

// KNNQuery describes a vector nearest-neighbor search over an FT index.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchEntry is one raw hit returned by FT.SEARCH.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// SearchResult is the raw outcome of an FT.SEARCH call.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}
