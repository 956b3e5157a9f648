// Where: cli/internal/translator/sections.go
// What: Section builders for analytics, notifications, interactions, storage, geo, and predictions.
// Why: Separate section extraction from the main translation flow.
package translator

import "github.com/poruru/amplify-config-bridge/cli/internal/outputs"

func parseAnalytics(legacy map[string]any) *outputs.AnalyticsConfig {
	appID := asString(legacy["aws_mobile_analytics_app_id"])
	if appID == "" {
		return nil
	}
	return &outputs.AnalyticsConfig{
		Pinpoint: outputs.PinpointConfig{
			AppID:  appID,
			Region: asString(legacy["aws_mobile_analytics_app_region"]),
		},
	}
}

func parseNotifications(legacy map[string]any) *outputs.NotificationsConfig {
	notifications := asMap(legacy["Notifications"])
	if notifications == nil {
		return nil
	}

	parsed := &outputs.NotificationsConfig{}
	if pinpoint := asMap(asMap(notifications["InAppMessaging"])["AWSPinpoint"]); pinpoint != nil {
		parsed.InAppMessaging = &outputs.InAppMessagingConfig{Pinpoint: parsePinpoint(pinpoint)}
	}
	if pinpoint := asMap(asMap(notifications["Push"])["AWSPinpoint"]); pinpoint != nil {
		parsed.PushNotification = &outputs.PushNotificationConfig{Pinpoint: parsePinpoint(pinpoint)}
	}
	if parsed.InAppMessaging == nil && parsed.PushNotification == nil {
		return nil
	}
	return parsed
}

func parsePinpoint(block map[string]any) outputs.PinpointConfig {
	return outputs.PinpointConfig{
		AppID:  asString(block["appId"]),
		Region: asString(block["region"]),
	}
}

func parseInteractions(legacy map[string]any) *outputs.InteractionsConfig {
	bots, ok := legacy["aws_bots_config"].([]any)
	if !ok {
		return nil
	}

	lexV1 := map[string]map[string]any{}
	for _, entry := range bots {
		bot := asMap(entry)
		if bot == nil {
			continue
		}
		name := asString(bot["name"])
		if name == "" {
			continue
		}
		lexV1[name] = bot
	}
	return &outputs.InteractionsConfig{LexV1: lexV1}
}

func parseStorage(legacy map[string]any) *outputs.StorageConfig {
	bucket := asString(legacy["aws_user_files_s3_bucket"])
	if bucket == "" {
		return nil
	}
	return &outputs.StorageConfig{
		S3: outputs.S3Config{
			Bucket: bucket,
			Region: asString(legacy["aws_user_files_s3_bucket_region"]),
			DangerouslyConnectToHTTPEndpointForTesting: asBool(legacy["aws_user_files_s3_dangerously_connect_to_http_endpoint_for_testing"]),
		},
	}
}

func parseGeo(legacy map[string]any) *outputs.GeoConfig {
	geo := asMap(legacy["geo"])
	if geo == nil {
		return nil
	}

	service := asMap(geo["amazon_location_service"])
	return &outputs.GeoConfig{
		LocationService: outputs.LocationServiceConfig{
			Maps:                asMap(service["maps"]),
			GeofenceCollections: asMap(service["geofenceCollections"]),
			// Renamed: the legacy block spells this search_indices.
			SearchIndices: asMap(service["search_indices"]),
			Region:        asString(service["region"]),
		},
	}
}

// parsePredictions passes the legacy predictions block through verbatim,
// except that a speech-generator default voice id collapses the nested
// defaults object to {voiceId} alone. The rewrite rebuilds the affected maps
// so the input stays untouched.
func parsePredictions(legacy map[string]any) map[string]any {
	predictions := asMap(legacy["predictions"])
	if predictions == nil {
		return nil
	}

	defaults := asMap(asMap(asMap(predictions["convert"])["speechGenerator"])["defaults"])
	voiceID := asString(defaults["VoiceId"])
	if voiceID == "" {
		return predictions
	}

	speech := cloneMap(asMap(asMap(predictions["convert"])["speechGenerator"]))
	speech["defaults"] = map[string]any{"voiceId": voiceID}
	convert := cloneMap(asMap(predictions["convert"]))
	convert["speechGenerator"] = speech
	parsed := cloneMap(predictions)
	parsed["convert"] = convert
	return parsed
}
