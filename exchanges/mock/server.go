package mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/ogrekit/ogrekit/log"
)

var (
	errNoRoutes      = errors.New("mock file contains no routes")
	errNoMatch       = errors.New("no mock response matches request")
	errInvalidMethod = errors.New("method not supported by mock route")
)

// VCRServer serves canned responses from a fixture file and records every
// request it receives
type VCRServer struct {
	URL string

	server   *httptest.Server
	mu       sync.Mutex
	requests []RecordedRequest
}

// NewVCRServer starts a server answering the routes defined in the JSON
// fixture at path
func NewVCRServer(path string) (*VCRServer, error) {
	if path == "" {
		return nil, errors.New("no path to mock file set")
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m VCRMock
	if err := json.Unmarshal(contents, &m); err != nil {
		return nil, err
	}
	if len(m.Routes) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoRoutes, path)
	}

	s := &VCRServer{}
	router := mux.NewRouter()
	// mux matches in registration order, literal paths must win over templates
	patterns := make([]string, 0, len(m.Routes))
	for pattern := range m.Routes {
		patterns = append(patterns, pattern)
	}
	slices.SortFunc(patterns, func(a, b string) int {
		if ta, tb := strings.Contains(a, "{"), strings.Contains(b, "{"); ta != tb {
			if ta {
				return 1
			}
			return -1
		}
		return strings.Compare(a, b)
	})
	for _, pattern := range patterns {
		router.HandleFunc(pattern, s.handler(m.Routes[pattern]))
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.record(r); err != nil {
			log.Errorf(log.Global, "mock server: %v", err)
		}
		http.NotFound(w, r)
	})

	s.server = httptest.NewServer(router)
	s.URL = s.server.URL
	return s, nil
}

func (s *VCRServer) handler(methods map[string][]HTTPResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.record(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		responses, ok := methods[r.Method]
		if !ok {
			http.Error(w, fmt.Sprintf("%v: %s", errInvalidMethod, r.Method), http.StatusMethodNotAllowed)
			return
		}

		bodyVals, err := url.ParseQuery(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		for i := range responses {
			wantQuery, err := url.ParseQuery(responses[i].QueryString)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			wantBody, err := url.ParseQuery(responses[i].BodyParams)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !MatchURLVals(wantQuery, r.URL.Query()) || !MatchURLVals(wantBody, bodyVals) {
				continue
			}
			status := responses[i].StatusCode
			if status == 0 {
				status = http.StatusOK
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if _, err := w.Write(responses[i].Data); err != nil {
				log.Errorf(log.Global, "mock server write: %v", err)
			}
			return
		}
		http.Error(w, fmt.Sprintf("%v: %s %s?%s body: %s", errNoMatch, r.Method, r.URL.Path, r.URL.RawQuery, body), http.StatusNotFound)
	}
}

func (s *VCRServer) record(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Body:          string(body),
		ContentType:   r.Header.Get("Content-Type"),
		Authorization: r.Header.Get("Authorization"),
	})
	s.mu.Unlock()
	return string(body), nil
}

// Client returns an HTTP client configured for the server
func (s *VCRServer) Client() *http.Client {
	return s.server.Client()
}

// Requests returns a copy of the requests received so far
func (s *VCRServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Reset discards the recorded requests
func (s *VCRServer) Reset() {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
}

// Close shuts the server down
func (s *VCRServer) Close() {
	s.server.Close()
}
