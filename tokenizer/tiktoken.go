package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TikToken adapts the tiktoken library, which implements the byte-pair
// encodings used by OpenAI models. Token ids map to fixed byte sequences,
// so Decode concatenates to the exact original bytes of any encoded run.
type TikToken struct {
	tke *tiktoken.Tiktoken
}

var _ Tokenizer = (*TikToken)(nil)

// NewTikToken creates a TikToken using the specified encoding.
// Common encodings include:
// - "cl100k_base" (GPT-4, ChatGPT)
// - "p50k_base" (GPT-3)
// - "r50k_base" (Codex)
func NewTikToken(encoding string) (*TikToken, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikToken{tke: tke}, nil
}

// NewTikTokenForModel creates a TikToken using the encoding registered
// for the given model name, e.g. "gpt-4o".
func NewTikTokenForModel(model string) (*TikToken, error) {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding for model %q: %w", model, err)
	}
	return &TikToken{tke: tke}, nil
}

// Encode implements Tokenizer. tiktoken accepts arbitrary input bytes, so
// encoding itself never fails.
func (t *TikToken) Encode(text string) ([]int, error) {
	return t.tke.Encode(text, nil, nil), nil
}

// Decode implements Tokenizer. tiktoken does not expose its vocabulary
// bound, so only negative ids are rejected here.
func (t *TikToken) Decode(ids []int) (string, error) {
	if err := validTokenIDs(ids, 0); err != nil {
		return "", err
	}
	return t.tke.Decode(ids), nil
}

// EncodeBatch implements Tokenizer.
func (t *TikToken) EncodeBatch(texts []string) ([][]int, error) {
	return encodeBatch(t, texts)
}

// DecodeBatch implements Tokenizer.
func (t *TikToken) DecodeBatch(batches [][]int) ([]string, error) {
	return decodeBatch(t, batches)
}
