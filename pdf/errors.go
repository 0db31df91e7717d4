package pdf

import "fmt"

// OpenError reports a PDF that could not be parsed or validated.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("pdf: cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// PageIndexError reports an operation that targeted a page index at or
// beyond the document's page count.
type PageIndexError struct {
	Index int
	Count int
}

func (e *PageIndexError) Error() string {
	return fmt.Sprintf("pdf: page %d is out of range for document with %d page(s)", e.Index, e.Count)
}

// SaveError reports a failure writing the output document. The source
// document is left untouched.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("pdf: cannot save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
