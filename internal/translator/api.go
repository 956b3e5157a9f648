// Where: cli/internal/translator/api.go
// What: API section builders (AppSync GraphQL and named REST endpoints).
// Why: Separate API extraction from the main translation flow.
package translator

import "github.com/poruru/amplify-config-bridge/cli/internal/outputs"

// authModeNames maps legacy AppSync authentication types to client auth
// modes. Matching is case-sensitive on the legacy side.
var authModeNames = map[string]string{
	"API_KEY":                   "apiKey",
	"AWS_IAM":                   "iam",
	"AMAZON_COGNITO_USER_POOLS": "userPool",
	"OPENID_CONNECT":            "oidc",
	"NONE":                      "none",
	"AWS_LAMBDA":                "lambda",
	// Historical duplicate of AWS_LAMBDA. Existing generated configs still
	// carry it, so both spellings stay mapped.
	"LAMBDA": "lambda",
}

// resolveAuthMode returns the auth mode for the legacy authentication type,
// falling back to iam with a diagnostic when the type is unknown or missing.
func (t *Translator) resolveAuthMode(legacyType string) string {
	if mode, ok := authModeNames[legacyType]; ok {
		return mode
	}
	t.log.Debug().
		Str("authenticationType", legacyType).
		Msg("invalid legacy authentication type, falling back to iam")
	return "iam"
}

func (t *Translator) parseAPI(legacy map[string]any) *outputs.APIConfig {
	parsed := &outputs.APIConfig{}

	if endpoint := asString(legacy["aws_appsync_graphqlEndpoint"]); endpoint != "" {
		graphQL := &outputs.GraphQLConfig{
			Endpoint:        endpoint,
			CustomEndpoint:  asString(legacy["aws_appsync_customEndpoint"]),
			APIKey:          asString(legacy["aws_appsync_apiKey"]),
			Region:          asString(legacy["aws_appsync_region"]),
			DefaultAuthMode: t.resolveAuthMode(asString(legacy["aws_appsync_authenticationType"])),
		}
		if introspection := asMap(legacy["modelIntrospection"]); introspection != nil {
			graphQL.ModelIntrospection = introspection
		}
		parsed.GraphQL = graphQL
	}

	if endpoints := parseRESTEndpoints(legacy["aws_cloud_logic_custom"]); len(endpoints) > 0 {
		parsed.REST = endpoints
	}

	if parsed.GraphQL == nil && parsed.REST == nil {
		return nil
	}
	return parsed
}

// parseRESTEndpoints reduces the cloud-logic list into a name-keyed map.
// Service and region are only attached when truthy.
func parseRESTEndpoints(value any) map[string]outputs.RESTEndpointConfig {
	entries, ok := value.([]any)
	if !ok || len(entries) == 0 {
		return nil
	}

	endpoints := map[string]outputs.RESTEndpointConfig{}
	for _, entry := range entries {
		apiDef := asMap(entry)
		if apiDef == nil {
			continue
		}
		name := asString(apiDef["name"])
		if name == "" {
			continue
		}
		endpoint := outputs.RESTEndpointConfig{Endpoint: asString(apiDef["endpoint"])}
		if service := asString(apiDef["service"]); service != "" {
			endpoint.Service = service
		}
		if region := asString(apiDef["region"]); region != "" {
			endpoint.Region = region
		}
		endpoints[name] = endpoint
	}
	if len(endpoints) == 0 {
		return nil
	}
	return endpoints
}
