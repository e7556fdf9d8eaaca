package render

import (
	"github.com/goccy/go-json"

	"github.com/katalvlaran/findiff/derive"
)

// Document is the machine-readable form of a Result. Every rational is a
// "num/den" string so nothing round-trips through floats.
type Document struct {
	Derivative      int      `json:"derivative"`
	Stencil         []int    `json:"stencil"`
	Coefficients    []string `json:"coefficients"`
	Multiplier      string   `json:"multiplier"`
	TruncationOrder int      `json:"truncation_order"`
	Dropped         []int    `json:"dropped,omitempty"`
	Text            string   `json:"text"`
}

// NewDocument converts a Result losslessly, embedding the Text rendering
// for consumers that want both forms from one payload.
func NewDocument(res *derive.Result) (*Document, error) {
	text, err := Text(res)
	if err != nil {
		return nil, err
	}
	ks := make([]string, len(res.Coeffs))
	for i, k := range res.Coeffs {
		ks[i] = k.RatString()
	}
	return &Document{
		Derivative:      res.Derivative,
		Stencil:         append([]int(nil), res.Stencil...),
		Coefficients:    ks,
		Multiplier:      res.Multiplier.RatString(),
		TruncationOrder: res.TruncationOrder,
		Dropped:         append([]int(nil), res.Dropped...),
		Text:            text,
	}, nil
}

// JSON marshals the Document form of res in one call.
func JSON(res *derive.Result) ([]byte, error) {
	doc, err := NewDocument(res)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
