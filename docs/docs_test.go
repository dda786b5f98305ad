package docs

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

type document struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDocument(t *testing.T) (string, document) {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	return raw, doc
}

func TestDoc_EveryReferenceIsDefined(t *testing.T) {
	raw, doc := readDocument(t)

	refs := regexp.MustCompile(`"#/definitions/([\w.]+)"`).FindAllStringSubmatch(raw, -1)
	if len(refs) == 0 {
		t.Fatal("expected schema references")
	}
	for _, ref := range refs {
		if _, ok := doc.Definitions[ref[1]]; !ok {
			t.Errorf("definition %q is referenced but missing", ref[1])
		}
	}
}

func TestDoc_RoutesMatchTheRouter(t *testing.T) {
	_, doc := readDocument(t)

	routes := map[string][]string{
		"/api/register/wizard":                {"post"},
		"/api/register/wizard/{id}":           {"get", "patch", "delete"},
		"/api/register/wizard/{id}/next":      {"post"},
		"/api/register/wizard/{id}/back":      {"post"},
		"/api/register/wizard/{id}/resume":    {"post"},
		"/api/register/wizard/{id}/submit":    {"post"},
		"/api/auth/login":                     {"post"},
		"/api/auth/logout":                    {"post"},
		"/api/auth/session":                   {"get"},
		"/api/profile":                        {"get", "put"},
		"/api/generate-meal":                  {"post"},
		"/api/generate-meal-plan":             {"post"},
		"/api/generate-meal-image":            {"post"},
		"/api/admin/stats":                    {"get"},
		"/api/admin/users":                    {"get"},
		"/api/admin/changes":                  {"get"},
		"/api/admin/schema/profile-columns":   {"post"},
		"/api/admin/schema/membership-column": {"post"},
		"/health":                             {"get"},
		"/health/ready":                       {"get"},
	}
	for path, methods := range routes {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("path %s is not documented", path)
			continue
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Errorf("%s %s is not documented", strings.ToUpper(m), path)
			}
		}
	}
	if len(doc.Paths) != len(routes) {
		t.Fatalf("documented %d paths, router serves %d", len(doc.Paths), len(routes))
	}
}

func TestDoc_SubmitListsTheConflictResponse(t *testing.T) {
	_, doc := readDocument(t)

	var op struct {
		Responses map[string]json.RawMessage `json:"responses"`
	}
	if err := json.Unmarshal(doc.Paths["/api/register/wizard/{id}/submit"]["post"], &op); err != nil {
		t.Fatalf("decode submit: %v", err)
	}
	for _, code := range []string{"200", "409", "422", "429", "502"} {
		if _, ok := op.Responses[code]; !ok {
			t.Errorf("submit response %s is not documented", code)
		}
	}
}
