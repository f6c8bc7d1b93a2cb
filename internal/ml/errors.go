package ml

import "fmt"

// UnknownCategoryError reports an inference input value that was never
// seen during training. It surfaces as a client error, never a crash.
type UnknownCategoryError struct {
	Feature string
	Value   string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category: %q", e.Feature, e.Value)
}
