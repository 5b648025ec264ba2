package tokenizer

import (
	"fmt"

	"github.com/daulet/tokenizers"
)

// HuggingFace adapts the native bindings to the HuggingFace tokenizers
// library (the "fast" Rust tokenizers). Special tokens are disabled on
// encode so that decoded runs correspond to spans of the source text.
type HuggingFace struct {
	tk *tokenizers.Tokenizer
}

var (
	_ Tokenizer  = (*HuggingFace)(nil)
	_ VocabSizer = (*HuggingFace)(nil)
)

// NewHuggingFaceFromFile loads a tokenizer.json from disk.
func NewHuggingFaceFromFile(path string) (*HuggingFace, error) {
	tk, err := tokenizers.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer from %s: %w", path, err)
	}
	return &HuggingFace{tk: tk}, nil
}

// Encode implements Tokenizer.
func (h *HuggingFace) Encode(text string) ([]int, error) {
	ids, _ := h.tk.Encode(text, false)
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out, nil
}

// Decode implements Tokenizer. Ids are validated against the engine's
// vocabulary before decoding.
func (h *HuggingFace) Decode(ids []int) (string, error) {
	if err := validTokenIDs(ids, h.VocabSize()); err != nil {
		return "", err
	}
	u32 := make([]uint32, len(ids))
	for i, id := range ids {
		u32[i] = uint32(id)
	}
	return h.tk.Decode(u32, false), nil
}

// EncodeBatch implements Tokenizer.
func (h *HuggingFace) EncodeBatch(texts []string) ([][]int, error) {
	return encodeBatch(h, texts)
}

// DecodeBatch implements Tokenizer.
func (h *HuggingFace) DecodeBatch(batches [][]int) ([]string, error) {
	return decodeBatch(h, batches)
}

// VocabSize implements VocabSizer.
func (h *HuggingFace) VocabSize() int {
	return int(h.tk.VocabSize())
}

// Close releases the native tokenizer handle. The adapter must not be
// used afterwards.
func (h *HuggingFace) Close() error {
	h.tk.Close()
	return nil
}
