// Package chunker splits text into overlapping fixed-size token windows.
//
// A TokenChunker encodes the input with a tokenizer.Tokenizer, cuts the
// token stream into windows of at most its chunk size whose start positions
// are a fixed stride apart, decodes each window, and locates the decoded
// text back in the original string. Every Chunk therefore carries the byte
// span of the input it was cut from, so downstream consumers can verify or
// re-slice chunks against the source document.
package chunker

import (
	"errors"
)

var (
	// ErrInvalidConfig reports a sizing policy rejected at construction.
	ErrInvalidConfig = errors.New("chunker: invalid configuration")

	// ErrOffsetRecovery reports decoded window text that cannot be located
	// in the original input. It means the tokenizer decodes its own encode
	// output inconsistently, and it is fatal: guessing a span would hand
	// corrupt offsets to span-based consumers.
	ErrOffsetRecovery = errors.New("chunker: offset recovery failed")
)

// Chunker defines the interface for text chunking implementations.
type Chunker interface {
	// Chunk splits a single text into ordered chunks.
	Chunk(text string) ([]Chunk, error)
	// ChunkBatch splits each text in order. Per-input results are identical
	// to calling Chunk on each text individually.
	ChunkBatch(texts []string) ([][]Chunk, error)
}
