package reader

import "fmt"

// FetchError reports a transport-level failure while retrieving a page. It
// is attributable to the caller's URL, so the boundary maps it to a client
// error.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractError reports a failure while parsing or converting content after a
// successful fetch. The boundary maps it to a server error.
type ExtractError struct {
	Err error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract content: %v", e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
