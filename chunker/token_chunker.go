package chunker

import (
	"fmt"
	"strings"

	"github.com/bububa/chunkers-go/tokenizer"
)

// Default sizing policy applied when no options are given.
const (
	DefaultChunkSize    = 512
	DefaultChunkOverlap = 128
)

// TokenChunker splits text into chunks of at most ChunkSize tokens, with
// consecutive chunks sharing exactly ChunkOverlap tokens. It is immutable
// after construction and safe for concurrent use as long as the underlying
// tokenizer is.
type TokenChunker struct {
	tok          tokenizer.Tokenizer
	chunkSize    int
	chunkOverlap int
}

var _ Chunker = (*TokenChunker)(nil)

// NewTokenChunker creates a TokenChunker backed by tok. The sizing policy
// is validated here: the chunk size must be positive and the overlap must
// be non-negative and smaller than the chunk size.
func NewTokenChunker(tok tokenizer.Tokenizer, options ...Option) (*TokenChunker, error) {
	tc := &TokenChunker{
		tok:          tok,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
	}
	for _, option := range options {
		option(tc)
	}
	if tc.tok == nil {
		return nil, fmt.Errorf("%w: tokenizer is nil", ErrInvalidConfig)
	}
	if tc.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk_size must be positive, got %d", ErrInvalidConfig, tc.chunkSize)
	}
	if tc.chunkOverlap < 0 {
		return nil, fmt.Errorf("%w: chunk_overlap must be non-negative, got %d", ErrInvalidConfig, tc.chunkOverlap)
	}
	if tc.chunkOverlap >= tc.chunkSize {
		return nil, fmt.Errorf("%w: chunk_overlap %d must be less than chunk_size %d", ErrInvalidConfig, tc.chunkOverlap, tc.chunkSize)
	}
	return tc, nil
}

// ChunkSize returns the maximum number of tokens per chunk.
func (tc *TokenChunker) ChunkSize() int {
	return tc.chunkSize
}

// ChunkOverlap returns the number of tokens shared by consecutive chunks.
func (tc *TokenChunker) ChunkOverlap() int {
	return tc.chunkOverlap
}

// String implements fmt.Stringer.
func (tc *TokenChunker) String() string {
	return fmt.Sprintf("TokenChunker(chunk_size=%d, chunk_overlap=%d)", tc.chunkSize, tc.chunkOverlap)
}

// Chunk implements Chunker. It encodes text into a token stream, cuts the
// stream into overlapping windows, decodes each window and maps it back to
// a byte span of text. Empty input yields no chunks and no tokenizer call.
func (tc *TokenChunker) Chunk(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	ids, err := tc.tok.Encode(text)
	if err != nil {
		return nil, err
	}
	return tc.split(text, ids)
}

// SplitText chunks text and returns only the chunk texts.
func (tc *TokenChunker) SplitText(text string) ([]string, error) {
	chunks, err := tc.Chunk(text)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out, nil
}

// ChunkBatch implements Chunker. All inputs are encoded in one batch call,
// then split in order. The first failing input fails the whole batch, with
// the input index carried on the error.
func (tc *TokenChunker) ChunkBatch(texts []string) ([][]Chunk, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	batches, err := tc.tok.EncodeBatch(texts)
	if err != nil {
		// Batch errors from arbitrary engines carry no input index.
		// Re-encode item by item to attach one.
		for i, text := range texts {
			if _, itemErr := tc.tok.Encode(text); itemErr != nil {
				return nil, fmt.Errorf("chunk batch: text %d: %w", i, itemErr)
			}
		}
		return nil, fmt.Errorf("chunk batch: %w", err)
	}
	if len(batches) != len(texts) {
		return nil, fmt.Errorf("chunk batch: encoder returned %d results for %d inputs", len(batches), len(texts))
	}
	out := make([][]Chunk, len(texts))
	for i, ids := range batches {
		if len(ids) == 0 {
			continue
		}
		chunks, err := tc.split(texts[i], ids)
		if err != nil {
			return nil, fmt.Errorf("chunk batch: text %d: %w", i, err)
		}
		out[i] = chunks
	}
	return out, nil
}

// split turns one text's token stream into chunks.
func (tc *TokenChunker) split(text string, ids []int) ([]Chunk, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	windows := tc.windows(ids)
	texts, err := tc.tok.DecodeBatch(windows)
	if err != nil {
		return nil, err
	}

	// Decoding each window's leading overlap run tells how many bytes of
	// the window were already emitted by the previous chunk. That is the
	// anchor for the forward search: the window's span starts at roughly
	// the previous end minus the overlap text.
	var overlaps []string
	if tc.chunkOverlap > 0 && len(windows) > 1 {
		runs := make([][]int, len(windows)-1)
		for k := 1; k < len(windows); k++ {
			runs[k-1] = windows[k][:tc.chunkOverlap]
		}
		overlaps, err = tc.tok.DecodeBatch(runs)
		if err != nil {
			return nil, err
		}
	}

	chunks := make([]Chunk, 0, len(texts))
	prevStart, prevEnd := 0, 0
	for k, windowText := range texts {
		anchor := 0
		if k > 0 {
			anchor = prevEnd
			if tc.chunkOverlap > 0 {
				anchor = prevEnd - len(overlaps[k-1])
				if anchor <= prevStart {
					// Keep start offsets strictly increasing.
					anchor = prevStart + 1
				}
			}
		}
		start, end, err := locate(text, windowText, anchor)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, Chunk{
			Text:       windowText,
			StartIndex: start,
			EndIndex:   end,
			TokenCount: len(windows[k]),
		})
		prevStart, prevEnd = start, end
	}
	return chunks, nil
}

// windows cuts ids into slices of at most chunkSize tokens whose start
// positions are chunkSize-chunkOverlap apart. The window that reaches the
// end of ids is the last one, even when a further start position would
// still fall inside it.
func (tc *TokenChunker) windows(ids []int) [][]int {
	stride := tc.chunkSize - tc.chunkOverlap
	var out [][]int
	for i := 0; i < len(ids); i += stride {
		j := min(i+tc.chunkSize, len(ids))
		out = append(out, ids[i:j])
		if j == len(ids) {
			break
		}
	}
	return out
}

// locate finds the byte span of windowText within text at or after anchor.
// Both the raw decoded text and its whitespace-trimmed form are searched
// and the earlier match wins. Engines that decorate decode output with
// edge whitespace can produce a raw string that also occurs, shifted, in
// repetitive documents; a later raw match must not shadow the true trimmed
// position, or the drift compounds through the anchor chain. For engines
// that decode byte-exactly the raw match sits at the anchor itself, so no
// trimmed match can precede it and spans stay exact.
func locate(text, windowText string, anchor int) (int, int, error) {
	if windowText == "" {
		return 0, 0, fmt.Errorf("%w: decoded window is empty at offset %d", ErrOffsetRecovery, anchor)
	}
	if anchor < 0 {
		anchor = 0
	}
	if anchor <= len(text) {
		idx := strings.Index(text[anchor:], windowText)
		length := len(windowText)
		if trimmed := strings.TrimSpace(windowText); trimmed != "" && trimmed != windowText {
			if tidx := strings.Index(text[anchor:], trimmed); tidx >= 0 && (idx < 0 || tidx < idx) {
				idx, length = tidx, len(trimmed)
			}
		}
		if idx >= 0 {
			start := anchor + idx
			return start, start + length, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: cannot locate decoded window (%d bytes) at or after offset %d", ErrOffsetRecovery, len(windowText), anchor)
}
