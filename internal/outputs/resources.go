// Where: cli/internal/outputs/resources.go
// What: Nested resources-config schema consumed by Amplify client libraries.
// Why: Give the translator a fixed, typed target shape.
package outputs

// ResourcesConfig is the nested configuration record produced by the
// translator. Each section is optional: a nil pointer (or nil map) means the
// legacy input carried no trigger for that section and the key is omitted
// from serialized output entirely.
//
// NOTE: Keep this package free of translation logic. The translator layer is
// responsible for mapping the legacy schema here.
type ResourcesConfig struct {
	Analytics     *AnalyticsConfig     `json:"Analytics,omitempty" yaml:"Analytics,omitempty"`
	API           *APIConfig           `json:"API,omitempty" yaml:"API,omitempty"`
	Auth          *AuthConfig          `json:"Auth,omitempty" yaml:"Auth,omitempty"`
	Geo           *GeoConfig           `json:"Geo,omitempty" yaml:"Geo,omitempty"`
	Interactions  *InteractionsConfig  `json:"Interactions,omitempty" yaml:"Interactions,omitempty"`
	Notifications *NotificationsConfig `json:"Notifications,omitempty" yaml:"Notifications,omitempty"`
	Predictions   map[string]any       `json:"Predictions,omitempty" yaml:"Predictions,omitempty"`
	Storage       *StorageConfig       `json:"Storage,omitempty" yaml:"Storage,omitempty"`
}

// AnalyticsConfig holds the Pinpoint analytics settings.
type AnalyticsConfig struct {
	Pinpoint PinpointConfig `json:"Pinpoint" yaml:"Pinpoint"`
}

// PinpointConfig identifies a Pinpoint application.
type PinpointConfig struct {
	AppID  string `json:"appId" yaml:"appId"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// NotificationsConfig groups the notification channels. InAppMessaging and
// PushNotification are independent sub-keys; both may be present at once.
type NotificationsConfig struct {
	InAppMessaging   *InAppMessagingConfig   `json:"InAppMessaging,omitempty" yaml:"InAppMessaging,omitempty"`
	PushNotification *PushNotificationConfig `json:"PushNotification,omitempty" yaml:"PushNotification,omitempty"`
}

// InAppMessagingConfig holds the in-app messaging channel settings.
type InAppMessagingConfig struct {
	Pinpoint PinpointConfig `json:"Pinpoint" yaml:"Pinpoint"`
}

// PushNotificationConfig holds the push channel settings.
type PushNotificationConfig struct {
	Pinpoint PinpointConfig `json:"Pinpoint" yaml:"Pinpoint"`
}

// InteractionsConfig maps bot names to their LexV1 definitions, carried
// verbatim from the legacy bot list.
type InteractionsConfig struct {
	LexV1 map[string]map[string]any `json:"LexV1" yaml:"LexV1"`
}

// APIConfig groups the GraphQL endpoint and named REST endpoints.
type APIConfig struct {
	GraphQL *GraphQLConfig                `json:"GraphQL,omitempty" yaml:"GraphQL,omitempty"`
	REST    map[string]RESTEndpointConfig `json:"REST,omitempty" yaml:"REST,omitempty"`
}

// GraphQLConfig holds the AppSync endpoint settings.
type GraphQLConfig struct {
	Endpoint           string         `json:"endpoint" yaml:"endpoint"`
	CustomEndpoint     string         `json:"customEndpoint,omitempty" yaml:"customEndpoint,omitempty"`
	APIKey             string         `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	Region             string         `json:"region,omitempty" yaml:"region,omitempty"`
	DefaultAuthMode    string         `json:"defaultAuthMode" yaml:"defaultAuthMode"`
	ModelIntrospection map[string]any `json:"modelIntrospection,omitempty" yaml:"modelIntrospection,omitempty"`
}

// RESTEndpointConfig holds a single named REST endpoint.
type RESTEndpointConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Service  string `json:"service,omitempty" yaml:"service,omitempty"`
}

// AuthConfig holds the Cognito settings.
type AuthConfig struct {
	Cognito CognitoConfig `json:"Cognito" yaml:"Cognito"`
}

// CognitoConfig holds identity pool, user pool, and sign-in settings.
type CognitoConfig struct {
	UserPoolID               string                         `json:"userPoolId,omitempty" yaml:"userPoolId,omitempty"`
	UserPoolClientID         string                         `json:"userPoolClientId,omitempty" yaml:"userPoolClientId,omitempty"`
	IdentityPoolID           string                         `json:"identityPoolId,omitempty" yaml:"identityPoolId,omitempty"`
	AllowGuestAccess         bool                           `json:"allowGuestAccess" yaml:"allowGuestAccess"`
	SignUpVerificationMethod string                         `json:"signUpVerificationMethod,omitempty" yaml:"signUpVerificationMethod,omitempty"`
	UserAttributes           map[string]UserAttributeConfig `json:"userAttributes,omitempty" yaml:"userAttributes,omitempty"`
	MFA                      *MFAConfig                     `json:"mfa,omitempty" yaml:"mfa,omitempty"`
	PasswordFormat           *PasswordFormatConfig          `json:"passwordFormat,omitempty" yaml:"passwordFormat,omitempty"`
	LoginWith                LoginWithConfig                `json:"loginWith" yaml:"loginWith"`
}

// UserAttributeConfig marks a user attribute as required.
type UserAttributeConfig struct {
	Required bool `json:"required" yaml:"required"`
}

// MFAConfig holds multi-factor authentication settings.
type MFAConfig struct {
	Status      string `json:"status" yaml:"status"`
	TOTPEnabled bool   `json:"totpEnabled" yaml:"totpEnabled"`
	SMSEnabled  bool   `json:"smsEnabled" yaml:"smsEnabled"`
}

// PasswordFormatConfig holds the user pool password policy.
type PasswordFormatConfig struct {
	MinLength                int  `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	RequireLowercase         bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireUppercase         bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireNumbers           bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecialCharacters bool `json:"requireSpecialCharacters" yaml:"requireSpecialCharacters"`
}

// LoginWithConfig describes the enabled sign-in mechanisms. Username is true
// only when neither email nor phone sign-in is enabled.
type LoginWithConfig struct {
	Username bool         `json:"username" yaml:"username"`
	Email    bool         `json:"email" yaml:"email"`
	Phone    bool         `json:"phone" yaml:"phone"`
	OAuth    *OAuthConfig `json:"oauth,omitempty" yaml:"oauth,omitempty"`
}

// OAuthConfig holds the hosted UI OAuth settings.
type OAuthConfig struct {
	Domain          string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	Scopes          []string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
	RedirectSignIn  []string `json:"redirectSignIn" yaml:"redirectSignIn"`
	RedirectSignOut []string `json:"redirectSignOut" yaml:"redirectSignOut"`
	ResponseType    string   `json:"responseType,omitempty" yaml:"responseType,omitempty"`
	Providers       []string `json:"providers,omitempty" yaml:"providers,omitempty"`
}

// StorageConfig holds the S3 storage settings.
type StorageConfig struct {
	S3 S3Config `json:"S3" yaml:"S3"`
}

// S3Config identifies the user-files bucket.
type S3Config struct {
	Bucket                                     string `json:"bucket" yaml:"bucket"`
	Region                                     string `json:"region,omitempty" yaml:"region,omitempty"`
	DangerouslyConnectToHTTPEndpointForTesting bool   `json:"dangerouslyConnectToHttpEndpointForTesting,omitempty" yaml:"dangerouslyConnectToHttpEndpointForTesting,omitempty"`
}

// GeoConfig holds the Amazon Location Service settings.
type GeoConfig struct {
	LocationService LocationServiceConfig `json:"LocationService" yaml:"LocationService"`
}

// LocationServiceConfig carries map, geofence, and search index resources
// verbatim from the legacy geo block.
type LocationServiceConfig struct {
	Maps                map[string]any `json:"maps,omitempty" yaml:"maps,omitempty"`
	GeofenceCollections map[string]any `json:"geofenceCollections,omitempty" yaml:"geofenceCollections,omitempty"`
	SearchIndices       map[string]any `json:"searchIndices,omitempty" yaml:"searchIndices,omitempty"`
	Region              string         `json:"region,omitempty" yaml:"region,omitempty"`
}
