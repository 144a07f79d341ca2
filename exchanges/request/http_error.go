package request

import "fmt"

// HTTPError is returned when a request reached the server but could not be
// completed, either because of a non 2xx status code or because the response
// body could not be decoded. It carries the request path, the query string and
// the raw server response.
type HTTPError struct {
	Name       string
	Path       string
	Query      string
	StatusCode int
	Body       string
	Err        error
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s url: %s, data: %s, status: %d, error: %s",
		e.Name,
		e.Path,
		e.Query,
		e.StatusCode,
		e.Body)
	if e.Err != nil {
		msg += ", cause: " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying decode or status error
func (e *HTTPError) Unwrap() error {
	return e.Err
}
