package metrics

import "github.com/prometheus/client_golang/prometheus"

// Retrieval and provider Prometheus metrics.
var (
	AnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "answers_total",
			Help:      "Total answers served, by retrieval source",
		},
		[]string{"source"}, // "vector" / "lexical" / "none"
	)

	VectorFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "vector_fallbacks_total",
			Help:      "Vector retrieval attempts that fell back to lexical matching",
		},
		[]string{"reason"}, // "embed" / "search" / "empty"
	)

	TranslationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "translation_requests_total",
			Help:      "Total answer translation requests",
		},
		[]string{"status"}, // "ok" / "error"
	)

	FeedbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "feedback_total",
			Help:      "Total feedback submissions",
		},
		[]string{"rating"}, // "positive" / "negative"
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "faqbot",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "embedding_tokens_total",
			Help:      "Total embedding tokens consumed",
		},
		[]string{"model", "type"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqbot",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registered bool

// RegisterMetrics registers retrieval and provider metrics. Must be called once from main.
func RegisterMetrics() {
	if registered {
		return
	}
	prometheus.MustRegister(AnswersTotal)
	prometheus.MustRegister(VectorFallbacksTotal)
	prometheus.MustRegister(TranslationRequestsTotal)
	prometheus.MustRegister(FeedbackTotal)
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingTokensTotal)
	prometheus.MustRegister(EmbeddingCacheTotal)
	registered = true
}
