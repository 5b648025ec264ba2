package tokenizer

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestPretrained(t *testing.T) {
	path := os.Getenv("TOKENIZER_JSON")
	if path == "" {
		t.Skip("TOKENIZER_JSON not set")
	}
	tok, err := NewPretrainedFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	input := "Hello, how are you?"
	ids, err := tok.Encode(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) == 0 {
		t.Fatal("invalid token count, want at least 1")
	}
	got, err := tok.Decode(ids)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(got) == "" {
		t.Error("invalid decode, want non-empty text")
	}

	batch, err := tok.EncodeBatch([]string{input, input})
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 2 || !reflect.DeepEqual(batch[0], ids) || !reflect.DeepEqual(batch[1], ids) {
		t.Errorf("invalid batch encode, want two copies of %v, got %v", ids, batch)
	}

	vocab := tok.VocabSize()
	if vocab <= 0 {
		t.Fatalf("invalid vocab size, want positive, got %d", vocab)
	}
	if _, err := tok.Decode([]int{-1}); !errors.Is(err, ErrDecoding) {
		t.Errorf("invalid error, want ErrDecoding, got %v", err)
	}
	if _, err := tok.Decode([]int{vocab}); !errors.Is(err, ErrDecoding) {
		t.Errorf("invalid error for out-of-range id, want ErrDecoding, got %v", err)
	}
}
