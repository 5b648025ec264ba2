package tokenizer

import (
	"github.com/clipperhouse/uax29/words"
)

// Words tokenizes on Unicode word boundaries (UAX #29) and builds its
// vocabulary on the fly. Runs of whitespace and punctuation are segments of
// their own, so decoding a run of ids reproduces the original text byte for
// byte. It needs no model files, which makes it a convenient default engine.
type Words struct {
	vocabEngine
}

var (
	_ Tokenizer  = (*Words)(nil)
	_ VocabSizer = (*Words)(nil)
)

// NewWords returns a word-boundary engine with an empty vocabulary.
func NewWords() *Words {
	return &Words{
		vocabEngine: vocabEngine{
			vocab:   make(map[string]int),
			segment: words.SegmentAll,
		},
	}
}
