package tokenizer

import (
	"github.com/clipperhouse/uax29/graphemes"
)

// Characters tokenizes into grapheme clusters (UAX #29), one token per
// user-perceived character. Like Words it is self-contained and decodes
// byte-exactly.
type Characters struct {
	vocabEngine
}

var (
	_ Tokenizer  = (*Characters)(nil)
	_ VocabSizer = (*Characters)(nil)
)

// NewCharacters returns a grapheme-cluster engine with an empty vocabulary.
func NewCharacters() *Characters {
	return &Characters{
		vocabEngine: vocabEngine{
			vocab:   make(map[string]int),
			segment: graphemes.SegmentAll,
		},
	}
}
