package ml

import "sort"

// LabelEncoding maps the category values seen at training time to dense
// integer codes. Classes are kept sorted so encodings are reproducible
// across training runs.
type LabelEncoding struct {
	Classes []string `json:"classes"`

	index map[string]int
}

// NewLabelEncoding builds an encoding over the distinct values in vals.
func NewLabelEncoding(vals []string) *LabelEncoding {
	seen := make(map[string]bool, len(vals))
	var classes []string
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			classes = append(classes, v)
		}
	}
	sort.Strings(classes)

	e := &LabelEncoding{Classes: classes}
	e.buildIndex()
	return e
}

// buildIndex rebuilds the lookup table, needed after loading an artifact.
func (e *LabelEncoding) buildIndex() {
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
}

// Encode returns the code for v, or false when v was not seen in training.
func (e *LabelEncoding) Encode(v string) (int, bool) {
	if e.index == nil {
		e.buildIndex()
	}
	code, ok := e.index[v]
	return code, ok
}
