package fhirclient

import (
	"context"

	"github.com/goccy/go-json"
)

// Client is the FHIR access capability the rest of the service composes:
// authenticated GETs against the upstream server, returning the raw resource
// or bundle body. Any transport error or non-2xx status is surfaced as a
// single rejection; callers never inspect upstream status codes.
type Client interface {
	Request(ctx context.Context, path string) (json.RawMessage, error)
	RequestWithParams(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)
}
