package history

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter estimates how many model tokens a piece of text costs.
type TokenCounter interface {
	Count(text string) int
}

// NewTiktokenCounter returns a counter backed by the BPE encoding for the
// given model. When the encoding cannot be loaded (unknown model, no cached
// vocabulary) it falls back to a bytes/4 estimate so trimming still bounds
// the request.
func NewTiktokenCounter(model string) TokenCounter {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return EstimateCounter{}
	}
	return &tiktokenCounter{enc: enc}
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// EstimateCounter approximates tokens as bytes/4, the usual rule of thumb
// for English text.
type EstimateCounter struct{}

func (EstimateCounter) Count(text string) int {
	return (len(text) + 3) / 4
}
