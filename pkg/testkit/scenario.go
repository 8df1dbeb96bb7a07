// Package testkit provides a JSON-scenario-driven REST API testing framework
// and the test database helper.
//
// Each scenario is a JSON object that describes:
//   - The HTTP request to fire (method, URL, body, headers)
//   - Expected HTTP status code
//   - Expected response body (optional, matched as a subset of the actual one)
//
// Scenario files live next to your *_test.go files:
//
//	testdata/
//	  010_create_customer.json      ← scenario (or an array of scenarios)
//	  010_create_customer_req.json  ← request body
//	  010_create_customer_res.json  ← expected response body
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    runner := testkit.NewRunner(handler, testkit.WithVar("token", token))
//	    runner.RunDir(t, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ─── Schema ───────────────────────────────────────────────────────────────────

// Scenario describes a single REST API test case.
type Scenario struct {
	// Meta
	Name        string `json:"name"`
	Description string `json:"description"`

	// Request
	RequestMethod   string            `json:"requestMethod"`   // GET, POST, PUT, DELETE
	RequestURL      string            `json:"requestUrl"`      // e.g. /api/customers/1
	RequestFileName string            `json:"requestFileName"` // request body file, relative to the scenario dir
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline request body
	Headers         map[string]string `json:"headers"`         // extra request headers

	// Response assertions
	ResponseFileName   string          `json:"responseFileName"`   // expected response file
	ResponseBody       json.RawMessage `json:"responseBody"`       // inline expected response
	ExpectedCode       int             `json:"expectedCode"`       // expected HTTP status code
	ExpectedStatusCode int             `json:"expectedStatusCode"` // alias for expectedCode

	// resolved at load time, not in JSON
	dir string
}

// ─── Loading ──────────────────────────────────────────────────────────────────

// LoadScenario reads a file holding one scenario object or an array of them.
func LoadScenario(path string) ([]*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var scenarios []*Scenario
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal(data, &scenarios)
	} else {
		var s Scenario
		err = json.Unmarshal(data, &s)
		scenarios = []*Scenario{&s}
	}
	if err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	dir := filepath.Dir(abs)
	for i, s := range scenarios {
		s.dir = dir
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: invalid scenario %q[%d]: %w", abs, i, err)
		}
	}
	return scenarios, nil
}

// validate performs basic sanity checks on the loaded scenario.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.RequestURL == "" {
		return errors.New("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		s.ExpectedCode = s.ExpectedStatusCode
	}
	if s.ExpectedCode == 0 {
		return errors.New("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	s.RequestMethod = strings.ToUpper(s.RequestMethod)
	if s.RequestFileName != "" && len(s.RequestBody) > 0 {
		return errors.New("requestFileName and requestBody are mutually exclusive")
	}
	if s.ResponseFileName != "" && len(s.ResponseBody) > 0 {
		return errors.New("responseFileName and responseBody are mutually exclusive")
	}
	return nil
}

func (s *Scenario) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Request returns the raw request body, or nil when the scenario has none.
func (s *Scenario) Request() ([]byte, error) {
	if len(s.RequestBody) > 0 {
		return s.RequestBody, nil
	}
	if s.RequestFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.RequestFileName))
}

// Response returns the expected response body, or nil when none is set.
func (s *Scenario) Response() ([]byte, error) {
	if len(s.ResponseBody) > 0 {
		return s.ResponseBody, nil
	}
	if s.ResponseFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.ResponseFileName))
}
