package domain

import "errors"

var (
	// ErrInvalidFAQ signals an FAQ with an empty question or answer.
	ErrInvalidFAQ = errors.New("faq question and answer are required")
	// ErrFAQNotFound signals a lookup or removal of a missing FAQ entry.
	ErrFAQNotFound = errors.New("faq not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrTranslationProviderError signals a translation provider failure.
	ErrTranslationProviderError = errors.New("translation provider error")
	// ErrVectorDimMismatch signals an embedding of unexpected dimensionality.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
)
