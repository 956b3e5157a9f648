// Where: cli/internal/translator/auth.go
// What: Auth.Cognito section builder.
// Why: The densest part of the mapping deserves its own file.
package translator

import (
	"strings"

	"github.com/poruru/amplify-config-bridge/cli/internal/outputs"
)

func parseAuth(legacy map[string]any) *outputs.AuthConfig {
	identityPoolID := asString(legacy["aws_cognito_identity_pool_id"])
	userPoolID := asString(legacy["aws_user_pools_id"])
	if identityPoolID == "" && userPoolID == "" {
		return nil
	}

	cognito := outputs.CognitoConfig{
		UserPoolID:       userPoolID,
		UserPoolClientID: asString(legacy["aws_user_pools_web_client_id"]),
		IdentityPoolID:   identityPoolID,
		// Guest access stays on unless mandatory sign-in is the literal
		// string "enable".
		AllowGuestAccess:         asString(legacy["aws_mandatory_sign_in"]) != "enable",
		SignUpVerificationMethod: asString(legacy["aws_cognito_sign_up_verification_method"]),
		UserAttributes:           parseUserAttributes(legacy),
		MFA:                      parseMFA(legacy),
		PasswordFormat:           parsePasswordFormat(legacy),
		LoginWith:                parseLoginWith(legacy),
	}

	attachOAuth(&cognito, legacy)
	return &outputs.AuthConfig{Cognito: cognito}
}

// parseUserAttributes unions the verification-mechanism and signup-attribute
// lists, lower-cases each key, and marks every resulting attribute required.
func parseUserAttributes(legacy map[string]any) map[string]outputs.UserAttributeConfig {
	merged := asStringSlice(legacy["aws_cognito_verification_mechanisms"])
	merged = append(merged, asStringSlice(legacy["aws_cognito_signup_attributes"])...)
	if len(merged) == 0 {
		return nil
	}

	attributes := map[string]outputs.UserAttributeConfig{}
	for _, key := range merged {
		attributes[strings.ToLower(key)] = outputs.UserAttributeConfig{Required: true}
	}
	return attributes
}

func parseMFA(legacy map[string]any) *outputs.MFAConfig {
	status := asString(legacy["aws_cognito_mfa_configuration"])
	if status == "" {
		return nil
	}
	mfaTypes := legacy["aws_cognito_mfa_types"]
	return &outputs.MFAConfig{
		Status:      strings.ToLower(status),
		TOTPEnabled: sliceContains(mfaTypes, "TOTP"),
		SMSEnabled:  sliceContains(mfaTypes, "SMS"),
	}
}

func parsePasswordFormat(legacy map[string]any) *outputs.PasswordFormatConfig {
	settings := asMap(legacy["aws_cognito_password_protection_settings"])
	if settings == nil {
		return nil
	}
	characters := settings["passwordPolicyCharacters"]
	return &outputs.PasswordFormatConfig{
		MinLength:                asInt(settings["passwordPolicyMinLength"]),
		RequireLowercase:         sliceContains(characters, "REQUIRES_LOWERCASE"),
		RequireUppercase:         sliceContains(characters, "REQUIRES_UPPERCASE"),
		RequireNumbers:           sliceContains(characters, "REQUIRES_NUMBERS"),
		RequireSpecialCharacters: sliceContains(characters, "REQUIRES_SYMBOLS"),
	}
}

func parseLoginWith(legacy map[string]any) outputs.LoginWithConfig {
	usernameAttributes := legacy["aws_cognito_username_attributes"]
	email := sliceContains(usernameAttributes, "EMAIL")
	phone := sliceContains(usernameAttributes, "PHONE_NUMBER")
	return outputs.LoginWithConfig{
		Username: !(email || phone),
		Email:    email,
		Phone:    phone,
	}
}

// attachOAuth adds the oauth sub-object to loginWith when the legacy oauth
// block has at least one key. The username/email/phone flags already set are
// never touched.
func attachOAuth(cognito *outputs.CognitoConfig, legacy map[string]any) {
	oauth := asMap(legacy["oauth"])
	if len(oauth) == 0 {
		return
	}

	extracted := extractOAuth(oauth)
	if providers := parseSocialProviders(legacy["aws_cognito_social_providers"]); len(providers) > 0 {
		extracted.Providers = providers
	}
	cognito.LoginWith.OAuth = &extracted
}
