// Package api defines the request-collection wire formats: the extended
// v2.1.0 shape and the minimal shape some import tools prefer. Both are
// written by the generator and accepted by the validator.
package api

// SchemaV210 identifies the extended collection format.
const SchemaV210 = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection is the extended wire shape.
type Collection struct {
	Info     Info       `json:"info"`
	Items    []Item     `json:"item"`
	Variable []Variable `json:"variable"`
}

// Info describes the collection as a whole.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      string `json:"schema"`
}

// Item is one request entry in the extended shape.
type Item struct {
	Name    string  `json:"name"`
	Request Request `json:"request"`
}

// Request carries the HTTP request proper.
type Request struct {
	Method string   `json:"method"`
	Header []Header `json:"header"`
	URL    URL      `json:"url"`
	Body   Body     `json:"body"`
}

// Header is a key/value request header in the extended shape.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// URL splits the request target into its raw form and host/path components.
type URL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host"`
	Path []string `json:"path"`
}

// Body holds the raw request payload.
type Body struct {
	Mode    string       `json:"mode"`
	Raw     string       `json:"raw"`
	Options *BodyOptions `json:"options,omitempty"`
}

// BodyOptions annotates a raw body with its language.
type BodyOptions struct {
	Raw RawOptions `json:"raw"`
}

type RawOptions struct {
	Language string `json:"language"`
}

// Variable is a collection-scoped template variable such as baseUrl.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// MinimalCollection is the compact wire shape.
type MinimalCollection struct {
	Version string           `json:"version"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Items   []MinimalRequest `json:"items"`
}

// MinimalRequest is one request entry in the minimal shape. Every request and
// header carries its own uid.
type MinimalRequest struct {
	UID     string          `json:"uid"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Method  string          `json:"method"`
	URL     string          `json:"url"`
	Headers []MinimalHeader `json:"headers"`
	Body    Body            `json:"body"`
}

// MinimalHeader is a request header in the minimal shape.
type MinimalHeader struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}
