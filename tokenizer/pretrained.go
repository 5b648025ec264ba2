package tokenizer

import (
	"fmt"

	sugarme "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Pretrained adapts the pure-Go implementation of the HuggingFace
// tokenizer format. It loads model-specific tokenizer.json files without
// native bindings, trading throughput for portability.
type Pretrained struct {
	tk *sugarme.Tokenizer
}

var (
	_ Tokenizer  = (*Pretrained)(nil)
	_ VocabSizer = (*Pretrained)(nil)
)

// NewPretrainedFromFile loads a tokenizer.json from disk.
func NewPretrainedFromFile(path string) (*Pretrained, error) {
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pretrained tokenizer from %s: %w", path, err)
	}
	return &Pretrained{tk: tk}, nil
}

// Encode implements Tokenizer. Special tokens are disabled so that
// decoded runs correspond to spans of the source text.
func (p *Pretrained) Encode(text string) ([]int, error) {
	en, err := p.tk.EncodeSingle(text, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	ids := make([]int, len(en.Ids))
	copy(ids, en.Ids)
	return ids, nil
}

// Decode implements Tokenizer. Ids are validated against the engine's
// vocabulary before decoding.
func (p *Pretrained) Decode(ids []int) (string, error) {
	if err := validTokenIDs(ids, p.VocabSize()); err != nil {
		return "", err
	}
	return p.tk.Decode(ids, false), nil
}

// EncodeBatch implements Tokenizer.
func (p *Pretrained) EncodeBatch(texts []string) ([][]int, error) {
	return encodeBatch(p, texts)
}

// DecodeBatch implements Tokenizer.
func (p *Pretrained) DecodeBatch(batches [][]int) ([]string, error) {
	return decodeBatch(p, batches)
}

// VocabSize implements VocabSizer.
func (p *Pretrained) VocabSize() int {
	return p.tk.GetVocabSize(true)
}
