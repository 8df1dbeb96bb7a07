// Package openapi renders an OpenAPI 3 document from the named route table.
// Operations carry path parameters and, for protected routes, the bearer
// security requirement. Bodies are described generically as the response
// envelope.
package openapi

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

type Info struct {
	Title   string `json:"title"   yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

type Parameter struct {
	Name     string            `json:"name"     yaml:"name"`
	In       string            `json:"in"       yaml:"in"`
	Required bool              `json:"required" yaml:"required"`
	Schema   map[string]string `json:"schema"   yaml:"schema"`
}

type Operation struct {
	OperationID string                `json:"operationId"          yaml:"operationId"`
	Tags        []string              `json:"tags,omitempty"       yaml:"tags,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody map[string]any        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"            yaml:"responses"`
	Security    []map[string][]string `json:"security,omitempty"   yaml:"security,omitempty"`
	Deprecated  bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

type Response struct {
	Description string `json:"description" yaml:"description"`
}

type Document struct {
	OpenAPI    string                          `json:"openapi"    yaml:"openapi"`
	Info       Info                            `json:"info"       yaml:"info"`
	Paths      map[string]map[string]Operation `json:"paths"      yaml:"paths"`
	Components map[string]any                  `json:"components" yaml:"components"`
}

var paramRE = regexp.MustCompile(`\{([^}/]+)\}`)

// Build describes routes. Paths are emitted in chi's {param} syntax, which is
// also OpenAPI's.
func Build(info Info, routes []router.Route) Document {
	doc := Document{
		OpenAPI: "3.0.3",
		Info:    info,
		Paths:   make(map[string]map[string]Operation),
		Components: map[string]any{
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]string{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
	}

	for _, rt := range routes {
		op := Operation{
			OperationID: operationID(rt),
			Tags:        tags(rt.Path),
			Responses:   responses(rt),
			Deprecated:  rt.AliasOf != "",
		}
		for _, m := range paramRE.FindAllStringSubmatch(rt.Path, -1) {
			op.Parameters = append(op.Parameters, Parameter{
				Name: m[1], In: "path", Required: true,
				Schema: map[string]string{"type": "string"},
			})
		}
		if rt.Method == http.MethodPost || rt.Method == http.MethodPut {
			op.RequestBody = map[string]any{
				"required": true,
				"content":  map[string]any{"application/json": map[string]any{"schema": map[string]string{"type": "object"}}},
			}
		}
		if !rt.Public {
			op.Security = []map[string][]string{{"bearerAuth": {}}}
		}

		item, ok := doc.Paths[rt.Path]
		if !ok {
			item = make(map[string]Operation)
			doc.Paths[rt.Path] = item
		}
		item[strings.ToLower(rt.Method)] = op
	}
	return doc
}

func operationID(rt router.Route) string {
	if rt.Name != "" {
		return rt.Name
	}
	return strings.ToLower(rt.Method) + strings.NewReplacer("/", "_", "{", "", "}", "").Replace(rt.Path)
}

// tags groups operations by the first path segment after /api and any
// version prefix.
func tags(path string) []string {
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		switch {
		case seg == "" || seg == "api" || seg == "v1" || seg == "v3":
			continue
		case strings.HasPrefix(seg, "{"):
			return nil
		default:
			return []string{seg}
		}
	}
	return nil
}

func responses(rt router.Route) map[string]Response {
	out := map[string]Response{"default": {Description: "error envelope"}}
	switch rt.Method {
	case http.MethodPost:
		out["201"] = Response{Description: "created"}
		out["200"] = Response{Description: "ok"}
	case http.MethodDelete:
		out["204"] = Response{Description: "deleted"}
	default:
		out["200"] = Response{Description: "ok"}
	}
	if !rt.Public {
		out["401"] = Response{Description: "missing or invalid bearer token"}
	}
	return out
}

// Handler serves the document built from routes() at request time, as JSON,
// or YAML when the path ends in .yaml.
func Handler(info Info, routes func() []router.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := Build(info, routes())
		if strings.HasSuffix(r.URL.Path, ".yaml") {
			w.Header().Set("Content-Type", "application/yaml")
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			enc.Encode(doc) //nolint:errcheck
			enc.Close()     //nolint:errcheck
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc) //nolint:errcheck
	}
}
