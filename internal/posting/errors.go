package posting

import "fmt"

// InvalidURLError is the only fatal error the extractor raises. Network,
// status and markup failures are absorbed into an all-absent Metadata.
type InvalidURLError struct {
	URL   string
	Cause error
}

func (e *InvalidURLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid job URL %q: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("invalid job URL %q", e.URL)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Cause
}

// FetchError represents a failed page fetch. It is returned by Fetch but
// absorbed by Extract.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
