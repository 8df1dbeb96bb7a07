// Runner fires scenarios against an http.Handler. RunDir() discovers all
// *.json files in a directory (skipping *_req.json / *_res.json bodies) and
// runs them in name order as subtests.

package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// Runner executes scenarios against one handler.
type Runner struct {
	handler http.Handler
	headers map[string]string
	vars    map[string]string
}

type Option func(*Runner)

// WithHeader sets a header on every request. Scenario headers win.
func WithHeader(key, value string) Option {
	return func(r *Runner) { r.headers[key] = value }
}

// WithVar replaces {{name}} in request URLs, headers and bodies.
func WithVar(name, value string) Option {
	return func(r *Runner) { r.vars[name] = value }
}

func NewRunner(handler http.Handler, opts ...Option) *Runner {
	r := &Runner{
		handler: handler,
		headers: map[string]string{},
		vars:    map[string]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every scenario in the file at path.
func (r *Runner) Run(t *testing.T, path string) {
	t.Helper()

	scenarios, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", path, err)
	}
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			r.runScenario(t, s)
		})
	}
}

// RunDir runs every scenario file in dir.
func (r *Runner) RunDir(t *testing.T, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		t.Fatalf("testkit: glob %q: %v", dir, err)
	}

	ran := 0
	for _, path := range entries {
		if isBodyFile(path) {
			continue
		}
		r.Run(t, path)
		ran++
	}
	if ran == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}
}

func isBodyFile(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), ".json")
	return strings.HasSuffix(base, "_req") || strings.HasSuffix(base, "_res")
}

func (r *Runner) expand(s string) string {
	for name, value := range r.vars {
		s = strings.ReplaceAll(s, "{{"+name+"}}", value)
	}
	return s
}

// Do fires one scenario and returns the recorded response without asserting.
func (r *Runner) Do(t *testing.T, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	raw, err := s.Request()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}
	if raw != nil {
		body = bytes.NewReader([]byte(r.expand(string(raw))))
	}

	req := httptest.NewRequest(s.RequestMethod, r.expand(s.RequestURL), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range r.headers {
		req.Header.Set(k, r.expand(v))
	}
	for k, v := range s.Headers {
		req.Header.Set(k, r.expand(v))
	}

	rec := httptest.NewRecorder()
	r.handler.ServeHTTP(rec, req)
	return rec
}

func (r *Runner) runScenario(t *testing.T, s *Scenario) {
	t.Helper()

	rec := r.Do(t, s)

	AssertStatusCode(t, s, rec.Code, rec.Body.Bytes())

	expected, err := s.Response()
	if err != nil {
		t.Errorf("[%s] read expected response: %v", s.Name, err)
		return
	}
	if expected != nil {
		AssertJSONBody(t, s, []byte(r.expand(string(expected))), rec.Body.Bytes())
	}
}
