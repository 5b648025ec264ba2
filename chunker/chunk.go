package chunker

import (
	"bytes"
	"strconv"

	"github.com/google/uuid"
)

// Chunk is one token window of an input text along with the metadata needed
// to re-locate it in the original document.
type Chunk struct {
	// Text is the decoded content of the window.
	Text string `json:"text"`
	// StartIndex is the byte offset into the original text where this chunk
	// begins.
	StartIndex int `json:"start_index"`
	// EndIndex is the byte offset into the original text where this chunk
	// ends (exclusive). Slicing the original by [StartIndex, EndIndex)
	// yields Text up to surrounding whitespace.
	EndIndex int `json:"end_index"`
	// TokenCount is the number of tokens in the window.
	TokenCount int `json:"token_count"`
}

// ID returns a deterministic identifier derived from the chunk's span and
// content. Equal chunks share an ID across runs.
func (c Chunk) ID() string {
	sb := new(bytes.Buffer)
	sb.WriteString(strconv.Itoa(c.StartIndex))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(c.EndIndex))
	sb.WriteByte('\n')
	sb.WriteString(c.Text)
	return uuid.NewSHA1(uuid.NameSpaceOID, sb.Bytes()).String()
}
