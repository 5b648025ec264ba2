package tokenizer

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// vocabEngine is the shared core of the self-contained engines: text is
// cut into segments by a segmentation function, and each distinct segment
// is assigned the next free id the first time it is seen. Ids are only
// meaningful to the instance that produced them.
//
// Because every byte of the input lands in exactly one segment, Decode is
// the byte-exact inverse of Encode.
type vocabEngine struct {
	mtx     sync.RWMutex
	vocab   map[string]int
	segs    []string
	segment func([]byte) [][]byte
}

// Encode implements Tokenizer. Input that is not valid UTF-8 is rejected.
func (e *vocabEngine) Encode(text string) ([]int, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrEncoding)
	}
	segs := e.segment([]byte(text))
	ids := make([]int, 0, len(segs))
	e.mtx.Lock()
	for _, seg := range segs {
		s := string(seg)
		id, ok := e.vocab[s]
		if !ok {
			id = len(e.segs)
			e.vocab[s] = id
			e.segs = append(e.segs, s)
		}
		ids = append(ids, id)
	}
	e.mtx.Unlock()
	return ids, nil
}

// Decode implements Tokenizer.
func (e *vocabEngine) Decode(ids []int) (string, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	var sb strings.Builder
	for _, id := range ids {
		if id < 0 || id >= len(e.segs) {
			return "", fmt.Errorf("%w: token id %d out of vocabulary range [0, %d)", ErrDecoding, id, len(e.segs))
		}
		sb.WriteString(e.segs[id])
	}
	return sb.String(), nil
}

// EncodeBatch implements Tokenizer.
func (e *vocabEngine) EncodeBatch(texts []string) ([][]int, error) {
	return encodeBatch(e, texts)
}

// DecodeBatch implements Tokenizer.
func (e *vocabEngine) DecodeBatch(batches [][]int) ([]string, error) {
	return decodeBatch(e, batches)
}

// VocabSize implements VocabSizer. It reports the vocabulary built so far.
func (e *vocabEngine) VocabSize() int {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return len(e.segs)
}
