// Where: cli/internal/translator/oauth.go
// What: OAuth block extraction and social provider normalization helpers.
// Why: Keep the small pure helpers apart from the section builders.
package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poruru/amplify-config-bridge/cli/internal/outputs"
)

// extractOAuth maps the legacy hosted-UI oauth block. The scope list carries
// over verbatim as scopes; the redirect fields are comma-separated strings
// that become string slices, empty when absent.
func extractOAuth(oauth map[string]any) outputs.OAuthConfig {
	return outputs.OAuthConfig{
		Domain:          asString(oauth["domain"]),
		Scopes:          asStringSlice(oauth["scope"]),
		RedirectSignIn:  splitRedirect(oauth["redirectSignIn"]),
		RedirectSignOut: splitRedirect(oauth["redirectSignOut"]),
		ResponseType:    asString(oauth["responseType"]),
	}
}

func splitRedirect(value any) []string {
	redirect := asString(value)
	if redirect == "" {
		return []string{}
	}
	return strings.Split(redirect, ",")
}

// parseSocialProviders title-cases each legacy provider name (GOOGLE ->
// Google). Order is preserved and duplicates are kept.
func parseSocialProviders(value any) []string {
	providers := asStringSlice(value)
	if len(providers) == 0 {
		return nil
	}

	parsed := make([]string, 0, len(providers))
	for _, provider := range providers {
		parsed = append(parsed, titleCase(provider))
	}
	return parsed
}

func titleCase(value string) string {
	lowered := strings.ToLower(value)
	if lowered == "" {
		return lowered
	}
	first, size := utf8.DecodeRuneInString(lowered)
	return string(unicode.ToUpper(first)) + lowered[size:]
}
