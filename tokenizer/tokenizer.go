// Package tokenizer presents third-party encoding engines behind one
// uniform capability surface: encode text into token ids, decode token
// ids back into text, and the batch forms of both. Chunkers and other
// token-budget-aware consumers depend on this interface instead of any
// concrete engine.
package tokenizer

import (
	"errors"
	"fmt"
)

// ErrEncoding is returned when an engine rejects its input text, for
// example because the text is not valid UTF-8.
var ErrEncoding = errors.New("tokenizer: encoding failed")

// ErrDecoding is returned when a token id cannot be mapped back to text,
// typically because it falls outside the engine's vocabulary range.
var ErrDecoding = errors.New("tokenizer: decoding failed")

// Tokenizer defines the interface for converting between text and token
// ids. Different implementations adapt different encoding engines (BPE,
// WordPiece, plain segmentation) to this one surface.
type Tokenizer interface {
	// Encode converts text into a sequence of token ids. Encoding the
	// same text against the same vocabulary always yields the same ids.
	Encode(text string) ([]int, error)
	// Decode converts token ids back into text. Decode is the left
	// inverse of Encode up to whitespace normalization: engines may
	// introduce or drop incidental whitespace at run edges, so callers
	// must not assume byte-exact inversion.
	Decode(ids []int) (string, error)
	// EncodeBatch encodes several texts. The result is index-aligned
	// with the input; no reordering is observable to the caller.
	EncodeBatch(texts []string) ([][]int, error)
	// DecodeBatch decodes several id runs. The result is index-aligned
	// with the input; no reordering is observable to the caller.
	DecodeBatch(batches [][]int) ([]string, error)
}

// VocabSizer is implemented by engines that can report their vocabulary
// size cheaply. Adapters that know the bound validate decode ids before
// handing them to the engine.
type VocabSizer interface {
	VocabSize() int
}

// validTokenIDs rejects ids outside [0, vocab). A vocab of zero means the
// engine does not expose its vocabulary bound and only negative ids can
// be rejected.
func validTokenIDs(ids []int, vocab int) error {
	for _, id := range ids {
		if id < 0 {
			return fmt.Errorf("%w: negative token id %d", ErrDecoding, id)
		}
		if vocab > 0 && id >= vocab {
			return fmt.Errorf("%w: token id %d out of vocabulary range [0, %d)", ErrDecoding, id, vocab)
		}
	}
	return nil
}

// encodeBatch implements EncodeBatch as an ordered loop for engines
// without a native batch surface.
func encodeBatch(t Tokenizer, texts []string) ([][]int, error) {
	out := make([][]int, len(texts))
	for i, text := range texts {
		ids, err := t.Encode(text)
		if err != nil {
			return nil, fmt.Errorf("encode batch item %d: %w", i, err)
		}
		out[i] = ids
	}
	return out, nil
}

// decodeBatch implements DecodeBatch as an ordered loop for engines
// without a native batch surface.
func decodeBatch(t Tokenizer, batches [][]int) ([]string, error) {
	out := make([]string, len(batches))
	for i, ids := range batches {
		text, err := t.Decode(ids)
		if err != nil {
			return nil, fmt.Errorf("decode batch item %d: %w", i, err)
		}
		out[i] = text
	}
	return out, nil
}
