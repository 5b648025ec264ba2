package tokenizer

import (
	"errors"
	"sync"
	"testing"
)

func TestWordsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "ascii sentence",
			input: "The quick brown fox jumps over the lazy dog.",
		},
		{
			name:  "punctuation and spacing",
			input: "Hello,   how are you?\n\nFine, thanks!",
		},
		{
			name:  "unicode",
			input: "Grüße aus Zürich: こんにちは世界 🌍!",
		},
		{
			name:  "leading and trailing space",
			input: "  padded text  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewWords()
			ids, err := tok.Encode(tt.input)
			if err != nil {
				t.Error(err)
				return
			}
			got, err := tok.Decode(ids)
			if err != nil {
				t.Error(err)
				return
			}
			if got != tt.input {
				t.Errorf("invalid round trip, want %q, got %q", tt.input, got)
			}
		})
	}
}

func TestWordsStableIDs(t *testing.T) {
	tok := NewWords()
	first, err := tok.Encode("to be or not to be")
	if err != nil {
		t.Fatal(err)
	}
	second, err := tok.Encode("to be or not to be")
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("invalid id count, want %d, got %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("invalid id at %d, want %d, got %d", i, first[i], second[i])
		}
	}
	// Distinct segments are "to", " ", "be", "or" and "not".
	if n := tok.VocabSize(); n != 5 {
		t.Errorf("invalid vocab size, want 5, got %d", n)
	}
}

func TestWordsEncodeEmpty(t *testing.T) {
	tok := NewWords()
	ids, err := tok.Encode("")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("invalid id count, want 0, got %d", len(ids))
	}
}

func TestWordsEncodeInvalidUTF8(t *testing.T) {
	tok := NewWords()
	if _, err := tok.Encode(string([]byte{0xff, 0xfe})); !errors.Is(err, ErrEncoding) {
		t.Errorf("invalid error, want ErrEncoding, got %v", err)
	}
}

func TestWordsDecodeUnknownID(t *testing.T) {
	tok := NewWords()
	if _, err := tok.Encode("hello world"); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		ids  []int
	}{
		{name: "negative", ids: []int{-1}},
		{name: "beyond vocabulary", ids: []int{1 << 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tok.Decode(tt.ids); !errors.Is(err, ErrDecoding) {
				t.Errorf("invalid error, want ErrDecoding, got %v", err)
			}
		})
	}
}

func TestWordsBatch(t *testing.T) {
	tok := NewWords()
	texts := []string{"first text", "second one", "", "first text"}
	batches, err := tok.EncodeBatch(texts)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != len(texts) {
		t.Fatalf("invalid batch count, want %d, got %d", len(texts), len(batches))
	}
	decoded, err := tok.DecodeBatch(batches)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range texts {
		if decoded[i] != want {
			t.Errorf("invalid batch item %d, want %q, got %q", i, want, decoded[i])
		}
	}
}

func TestWordsConcurrent(t *testing.T) {
	tok := NewWords()
	inputs := []string{
		"alpha beta gamma",
		"delta epsilon zeta",
		"alpha zeta beta",
		"eta theta iota kappa",
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := inputs[i%len(inputs)]
			for j := 0; j < 50; j++ {
				ids, err := tok.Encode(input)
				if err != nil {
					t.Error(err)
					return
				}
				got, err := tok.Decode(ids)
				if err != nil {
					t.Error(err)
					return
				}
				if got != input {
					t.Errorf("invalid round trip, want %q, got %q", input, got)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestWordsDecodeBatchError(t *testing.T) {
	tok := NewWords()
	if _, err := tok.Encode("abc"); err != nil {
		t.Fatal(err)
	}
	if _, err := tok.DecodeBatch([][]int{{0}, {999}}); !errors.Is(err, ErrDecoding) {
		t.Errorf("invalid error, want ErrDecoding, got %v", err)
	}
}
