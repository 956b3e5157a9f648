// Where: cli/internal/exports/validate_test.go
// What: Tests for schema validation of legacy documents.
// Why: The embedded schema must accept generated configs and flag broken ones.
package exports

import "testing"

func TestValidateAcceptsGeneratedConfig(t *testing.T) {
	doc, err := Parse([]byte(`{
		"aws_project_region": "eu-west-1",
		"aws_user_pools_id": "eu-west-1_abc",
		"aws_cognito_mfa_types": ["SMS"],
		"aws_cloud_logic_custom": [
			{"name": "api", "endpoint": "https://api.example.com"}
		]
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Validate(doc); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateRejectsMissingRegionMarker(t *testing.T) {
	doc, err := Parse([]byte(`{"aws_user_pools_id": "eu-west-1_abc"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Validate(doc); err == nil {
		t.Fatalf("expected validation failure without region marker")
	}
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	doc, err := Parse([]byte(`{
		"aws_project_region": "eu-west-1",
		"aws_cognito_mfa_types": "SMS"
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Validate(doc); err == nil {
		t.Fatalf("expected validation failure for non-array mfa types")
	}
}
