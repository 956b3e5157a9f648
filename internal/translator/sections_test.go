// Where: cli/internal/translator/sections_test.go
// What: Tests for the remaining section builders.
// Why: Each trigger gates its section independently.
package translator

import (
	"reflect"
	"testing"
)

func TestParseAnalytics(t *testing.T) {
	analytics := parseAnalytics(map[string]any{
		"aws_mobile_analytics_app_id":     "app",
		"aws_mobile_analytics_app_region": "eu-west-1",
	})
	if analytics == nil {
		t.Fatalf("expected analytics section")
	}
	if analytics.Pinpoint.AppID != "app" || analytics.Pinpoint.Region != "eu-west-1" {
		t.Errorf("unexpected pinpoint: %+v", analytics.Pinpoint)
	}

	if parseAnalytics(map[string]any{}) != nil {
		t.Errorf("expected no analytics without app id")
	}
}

func TestParseNotificationsSingleChannel(t *testing.T) {
	notifications := parseNotifications(map[string]any{
		"Notifications": map[string]any{
			"Push": map[string]any{
				"AWSPinpoint": map[string]any{"appId": "push-app", "region": "eu-west-1"},
			},
		},
	})
	if notifications == nil || notifications.PushNotification == nil {
		t.Fatalf("expected push channel, got %+v", notifications)
	}
	if notifications.InAppMessaging != nil {
		t.Errorf("unexpected in-app channel: %+v", notifications.InAppMessaging)
	}
}

func TestParseNotificationsEmptyBlock(t *testing.T) {
	if got := parseNotifications(map[string]any{"Notifications": map[string]any{}}); got != nil {
		t.Fatalf("expected no section for empty block, got %+v", got)
	}
}

func TestParseInteractionsIndexesByName(t *testing.T) {
	interactions := parseInteractions(map[string]any{
		"aws_bots_config": []any{
			map[string]any{"name": "BotA", "alias": "a"},
			map[string]any{"name": "BotB", "alias": "b"},
		},
	})
	if interactions == nil {
		t.Fatalf("expected interactions section")
	}
	if len(interactions.LexV1) != 2 {
		t.Fatalf("expected 2 bots, got %d", len(interactions.LexV1))
	}
	if interactions.LexV1["BotB"]["alias"] != "b" {
		t.Errorf("unexpected BotB: %+v", interactions.LexV1["BotB"])
	}
}

func TestParseInteractionsRequiresArray(t *testing.T) {
	if got := parseInteractions(map[string]any{"aws_bots_config": "not-a-list"}); got != nil {
		t.Fatalf("expected no section for non-array value, got %+v", got)
	}
}

func TestParseStorage(t *testing.T) {
	storage := parseStorage(map[string]any{
		"aws_user_files_s3_bucket":        "bucket",
		"aws_user_files_s3_bucket_region": "eu-west-1",
		"aws_user_files_s3_dangerously_connect_to_http_endpoint_for_testing": true,
	})
	if storage == nil {
		t.Fatalf("expected storage section")
	}
	s3 := storage.S3
	if s3.Bucket != "bucket" || s3.Region != "eu-west-1" || !s3.DangerouslyConnectToHTTPEndpointForTesting {
		t.Errorf("unexpected S3 config: %+v", s3)
	}

	if parseStorage(map[string]any{}) != nil {
		t.Errorf("expected no storage without bucket")
	}
}

func TestParseGeoRenamesSearchIndices(t *testing.T) {
	geo := parseGeo(map[string]any{
		"geo": map[string]any{
			"amazon_location_service": map[string]any{
				"region":         "eu-west-1",
				"search_indices": map[string]any{"items": []any{"idx"}, "default": "idx"},
			},
		},
	})
	if geo == nil {
		t.Fatalf("expected geo section")
	}
	service := geo.LocationService
	if service.Region != "eu-west-1" {
		t.Errorf("unexpected region: %s", service.Region)
	}
	if service.SearchIndices["default"] != "idx" {
		t.Errorf("searchIndices not renamed: %+v", service.SearchIndices)
	}
}

func TestParsePredictionsPassthrough(t *testing.T) {
	block := map[string]any{
		"identify": map[string]any{"identifyText": map[string]any{"region": "eu-west-1"}},
		"custom":   "kept-verbatim",
	}
	got := parsePredictions(map[string]any{"predictions": block})
	if !reflect.DeepEqual(got, block) {
		t.Fatalf("expected verbatim passthrough, got %+v", got)
	}
}

func TestParsePredictionsCollapsesVoiceDefaults(t *testing.T) {
	got := parsePredictions(map[string]any{
		"predictions": map[string]any{
			"convert": map[string]any{
				"speechGenerator": map[string]any{
					"region":   "eu-west-1",
					"defaults": map[string]any{"VoiceId": "Amy", "language": "en-GB"},
				},
			},
		},
	})

	speech := got["convert"].(map[string]any)["speechGenerator"].(map[string]any)
	defaults := speech["defaults"].(map[string]any)
	if !reflect.DeepEqual(defaults, map[string]any{"voiceId": "Amy"}) {
		t.Fatalf("defaults = %+v, want voiceId only", defaults)
	}
	// Sibling speechGenerator fields survive the rewrite.
	if speech["region"] != "eu-west-1" {
		t.Errorf("sibling field dropped: %+v", speech)
	}
}
