// Where: cli/internal/translator/api_test.go
// What: Tests for GraphQL and REST API section builders.
// Why: Pin the auth-mode table, its fallback diagnostic, and REST reduction.
package translator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestResolveAuthModeTable(t *testing.T) {
	cases := []struct {
		legacy string
		want   string
	}{
		{legacy: "API_KEY", want: "apiKey"},
		{legacy: "AWS_IAM", want: "iam"},
		{legacy: "AMAZON_COGNITO_USER_POOLS", want: "userPool"},
		{legacy: "OPENID_CONNECT", want: "oidc"},
		{legacy: "NONE", want: "none"},
		{legacy: "AWS_LAMBDA", want: "lambda"},
		{legacy: "LAMBDA", want: "lambda"},
	}
	tr := newTestTranslator()
	for _, tc := range cases {
		if got := tr.resolveAuthMode(tc.legacy); got != tc.want {
			t.Errorf("resolveAuthMode(%q) = %q, want %q", tc.legacy, got, tc.want)
		}
	}
}

func TestResolveAuthModeFallbackLogs(t *testing.T) {
	var buf bytes.Buffer
	tr := New(zerolog.New(&buf))

	if got := tr.resolveAuthMode("SOMETHING_ELSE"); got != "iam" {
		t.Fatalf("expected iam fallback, got %q", got)
	}
	if !strings.Contains(buf.String(), "falling back to iam") {
		t.Errorf("expected a fallback diagnostic, got %q", buf.String())
	}

	buf.Reset()
	if got := tr.resolveAuthMode("AWS_IAM"); got != "iam" {
		t.Fatalf("expected iam, got %q", got)
	}
	if buf.Len() != 0 {
		t.Errorf("known type must not log, got %q", buf.String())
	}
}

func TestParseAPIGraphQL(t *testing.T) {
	tr := newTestTranslator()
	api := tr.parseAPI(map[string]any{
		"aws_appsync_graphqlEndpoint":    "https://example/graphql",
		"aws_appsync_region":             "eu-west-1",
		"aws_appsync_apiKey":             "da2-key",
		"aws_appsync_authenticationType": "AWS_IAM",
		"modelIntrospection":             map[string]any{"version": float64(1)},
	})
	if api == nil || api.GraphQL == nil {
		t.Fatalf("expected GraphQL section, got %+v", api)
	}
	gql := api.GraphQL
	if gql.Endpoint != "https://example/graphql" || gql.Region != "eu-west-1" || gql.APIKey != "da2-key" {
		t.Errorf("unexpected GraphQL fields: %+v", gql)
	}
	if gql.DefaultAuthMode != "iam" {
		t.Errorf("defaultAuthMode = %q, want iam", gql.DefaultAuthMode)
	}
	if gql.ModelIntrospection == nil {
		t.Errorf("expected modelIntrospection attached")
	}
}

func TestParseAPIModelIntrospectionOnlyWhenPresent(t *testing.T) {
	api := newTestTranslator().parseAPI(map[string]any{
		"aws_appsync_graphqlEndpoint":    "https://example/graphql",
		"aws_appsync_authenticationType": "API_KEY",
	})
	if api.GraphQL.ModelIntrospection != nil {
		t.Fatalf("expected no modelIntrospection, got %+v", api.GraphQL.ModelIntrospection)
	}
}

func TestParseRESTEndpoints(t *testing.T) {
	endpoints := parseRESTEndpoints([]any{
		map[string]any{
			"name":     "orders",
			"endpoint": "https://orders.example.com",
			"region":   "eu-west-1",
			"service":  "execute-api",
		},
		map[string]any{
			"name":     "bare",
			"endpoint": "https://bare.example.com",
		},
	})
	if len(endpoints) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(endpoints))
	}
	orders := endpoints["orders"]
	if orders.Endpoint != "https://orders.example.com" || orders.Region != "eu-west-1" || orders.Service != "execute-api" {
		t.Errorf("unexpected orders endpoint: %+v", orders)
	}
	bare := endpoints["bare"]
	if bare.Region != "" || bare.Service != "" {
		t.Errorf("falsy service/region must be dropped: %+v", bare)
	}
}

func TestParseAPIOmittedEntirely(t *testing.T) {
	if api := newTestTranslator().parseAPI(map[string]any{"aws_project_region": "eu-west-1"}); api != nil {
		t.Fatalf("expected no API section, got %+v", api)
	}
	if api := newTestTranslator().parseAPI(map[string]any{"aws_cloud_logic_custom": []any{}}); api != nil {
		t.Fatalf("expected no API section for empty REST list, got %+v", api)
	}
}
