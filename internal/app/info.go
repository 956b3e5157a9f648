// Where: cli/internal/app/info.go
// What: The info command: summarize the translated sections.
// Why: Quick inspection without writing any file.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru/amplify-config-bridge/cli/internal/outputs"
	"github.com/poruru/amplify-config-bridge/cli/internal/translator"
	"github.com/poruru/amplify-config-bridge/cli/internal/ui"
)

func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	location, err := resolveInput(cli.Info.Input)
	if err != nil {
		return exitWithError(out, err)
	}

	legacy, err := newLoader(deps).Load(context.Background(), location)
	if err != nil {
		return exitWithError(out, err)
	}

	resources, err := translator.New(deps.Logger).Translate(legacy)
	if err != nil {
		return exitWithError(out, err)
	}

	printSummary(ui.New(out), location, resources)
	return 0
}

func printSummary(console *ui.Console, location string, cfg outputs.ResourcesConfig) {
	console.Header("📄", location)

	sections := 0
	if cfg.Analytics != nil {
		console.Item("Analytics", cfg.Analytics.Pinpoint.AppID)
		sections++
	}
	if cfg.API != nil {
		if cfg.API.GraphQL != nil {
			console.Item("API.GraphQL", cfg.API.GraphQL.Endpoint)
		}
		if len(cfg.API.REST) > 0 {
			console.Item("API.REST", fmt.Sprintf("%d endpoint(s)", len(cfg.API.REST)))
		}
		sections++
	}
	if cfg.Auth != nil {
		pool := cfg.Auth.Cognito.UserPoolID
		if pool == "" {
			pool = cfg.Auth.Cognito.IdentityPoolID
		}
		console.Item("Auth", pool)
		sections++
	}
	if cfg.Geo != nil {
		console.Item("Geo", cfg.Geo.LocationService.Region)
		sections++
	}
	if cfg.Interactions != nil {
		console.Item("Interactions", fmt.Sprintf("%d bot(s)", len(cfg.Interactions.LexV1)))
		sections++
	}
	if cfg.Notifications != nil {
		channels := 0
		if cfg.Notifications.InAppMessaging != nil {
			channels++
		}
		if cfg.Notifications.PushNotification != nil {
			channels++
		}
		console.Item("Notifications", fmt.Sprintf("%d channel(s)", channels))
		sections++
	}
	if cfg.Predictions != nil {
		console.Item("Predictions", fmt.Sprintf("%d block(s)", len(cfg.Predictions)))
		sections++
	}
	if cfg.Storage != nil {
		console.Item("Storage", cfg.Storage.S3.Bucket)
		sections++
	}

	if sections == 0 {
		console.ItemPlain("no sections (only the region marker is set)")
	}
}
