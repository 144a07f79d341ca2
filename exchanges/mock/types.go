package mock

import "encoding/json"

// VCRMock defines the fixture file layout: path -> HTTP method -> responses
type VCRMock struct {
	Routes map[string]map[string][]HTTPResponse `json:"routes"`
}

// HTTPResponse defines a canned response and the request values it answers
type HTTPResponse struct {
	Data        json.RawMessage `json:"data"`
	QueryString string          `json:"queryString"`
	BodyParams  string          `json:"bodyParams"`
	StatusCode  int             `json:"statusCode,omitempty"`
}

// RecordedRequest is a request received by a VCRServer
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Body          string
	ContentType   string
	Authorization string
}
