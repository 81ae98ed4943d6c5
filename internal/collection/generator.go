// Package collection turns renamed test-case trees into request-collection
// files and provides standalone validation and statistics over them.
package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/vishnupriyancode/renaming-postman-final/api"
	"github.com/vishnupriyancode/renaming-postman-final/internal/config"
	"github.com/vishnupriyancode/renaming-postman-final/internal/discover"
	"github.com/vishnupriyancode/renaming-postman-final/internal/logging"
	"github.com/vishnupriyancode/renaming-postman-final/internal/naming"
)

// ErrNoRequests reports a model whose destination tree yielded no usable
// request, so no collection file was written.
var ErrNoRequests = errors.New("no requests could be created")

// Settings carries the request template applied to every generated entry.
type Settings struct {
	BaseURL     string
	RequestPath string // e.g. "/api/validate/{{tc_id}}"
	Headers     []config.Header
	Minimal     bool // emit the minimal wire shape instead of the extended one
}

// Generator writes collection files for models.
type Generator struct {
	FS        billy.Filesystem
	Log       *logging.Logger
	OutputDir string // collections root for the model's category set
	Settings  Settings
}

// Generate walks the model's destination tree, builds one request per
// canonical test-case file, and writes the collection to
// <OutputDir>/<collection name>/<collection file>. Returns the written path.
func (g *Generator) Generate(m discover.Model) (string, error) {
	files, err := g.collectFiles(m.DestPath)
	if err != nil {
		return "", err
	}

	var doc any
	var count int
	if g.Settings.Minimal {
		col := g.buildMinimal(m, files)
		count = len(col.Items)
		doc = col
	} else {
		col := g.buildExtended(m, files)
		count = len(col.Items)
		doc = col
	}
	if count == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoRequests, m.CollectionName)
	}

	dir := g.FS.Join(g.OutputDir, m.CollectionName)
	if err := g.FS.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	out := g.FS.Join(dir, m.CollectionFile)
	if err := util.WriteFile(g.FS, out, data, 0o644); err != nil {
		return "", err
	}
	g.Log.Success("generated collection %s (%d request(s))", out, count)
	return out, nil
}

// sourceFile is one accepted test-case file under the destination tree.
type sourceFile struct {
	path string
	name string // request name: filename without extension
	body string // pretty-printed payload
}

// collectFiles walks dir and keeps only canonical 5-segment .json files.
// Files that do not parse as JSON still become requests with an empty body.
func (g *Generator) collectFiles(dir string) ([]sourceFile, error) {
	var files []sourceFile
	err := util.Walk(g.FS, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".json") {
			return nil
		}
		f, cerr := naming.ClassifyAsset(fi.Name())
		if cerr != nil || f.Segments != 5 {
			g.Log.Warn("skipping %s: not a canonical test-case name", fi.Name())
			return nil
		}
		files = append(files, sourceFile{
			path: path,
			name: strings.TrimSuffix(fi.Name(), ".json"),
			body: g.prettyBody(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

// prettyBody reads and reformats a payload deterministically: sorted keys,
// two-space indent. An unreadable or unparseable payload degrades to "{}".
func (g *Generator) prettyBody(path string) string {
	data, err := util.ReadFile(g.FS, path)
	if err != nil {
		g.Log.Warn("could not read %s: %v", path, err)
		return "{}"
	}
	val, err := oj.Parse(data)
	if err != nil {
		g.Log.Warn("could not parse %s: %v", path, err)
		return "{}"
	}
	return oj.JSON(val, &ojg.Options{Indent: 2, Sort: true})
}

func (g *Generator) rawURL() string {
	return "{{baseUrl}}" + g.Settings.RequestPath
}

func (g *Generator) urlPath() []string {
	return strings.Split(strings.Trim(g.Settings.RequestPath, "/"), "/")
}

func (g *Generator) buildExtended(m discover.Model, files []sourceFile) api.Collection {
	headers := make([]api.Header, 0, len(g.Settings.Headers))
	for _, h := range g.Settings.Headers {
		headers = append(headers, api.Header{Key: h.Name, Value: h.Value, Type: "text"})
	}

	col := api.Collection{
		Info: api.Info{
			Name:        m.CollectionName + " API Collection",
			Description: fmt.Sprintf("API collection for %s test cases", m.CollectionName),
			Schema:      api.SchemaV210,
		},
		Variable: []api.Variable{
			{Key: "baseUrl", Value: g.Settings.BaseURL, Type: "string"},
		},
	}
	for _, f := range files {
		col.Items = append(col.Items, api.Item{
			Name: f.name,
			Request: api.Request{
				Method: "POST",
				Header: headers,
				URL: api.URL{
					Raw:  g.rawURL(),
					Host: []string{"{{baseUrl}}"},
					Path: g.urlPath(),
				},
				Body: api.Body{
					Mode:    "raw",
					Raw:     f.body,
					Options: &api.BodyOptions{Raw: api.RawOptions{Language: "json"}},
				},
			},
		})
	}
	return col
}

func (g *Generator) buildMinimal(m discover.Model, files []sourceFile) api.MinimalCollection {
	col := api.MinimalCollection{
		Version: "1",
		Name:    m.CollectionName + " API Collection",
		Type:    "collection",
	}
	for _, f := range files {
		headers := make([]api.MinimalHeader, 0, len(g.Settings.Headers))
		for _, h := range g.Settings.Headers {
			headers = append(headers, api.MinimalHeader{
				UID:     uuid.NewString(),
				Name:    h.Name,
				Value:   h.Value,
				Enabled: true,
			})
		}
		col.Items = append(col.Items, api.MinimalRequest{
			UID:     uuid.NewString(),
			Name:    f.name,
			Type:    "http",
			Method:  "POST",
			URL:     g.rawURL(),
			Headers: headers,
			Body:    api.Body{Mode: "raw", Raw: f.body},
		})
	}
	return col
}
