package chunker

// Option is a function type for configuring TokenChunker instances.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*TokenChunker)

func WithChunkSize(size int) Option {
	return func(tc *TokenChunker) {
		tc.chunkSize = size
	}
}

func WithChunkOverlap(overlap int) Option {
	return func(tc *TokenChunker) {
		tc.chunkOverlap = overlap
	}
}
