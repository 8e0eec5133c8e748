package provider

import (
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// SetupDefaultProvider pins every resource to the configured project and
// region and labels it with the application name.
func SetupDefaultProvider(ctx *pulumi.Context) (*gcp.Provider, error) {
	cfg := config.New(ctx, "gcp")

	return gcp.NewProvider(ctx, "expenseProvider", &gcp.ProviderArgs{
		Project:             pulumi.String(cfg.Require("project")),
		Region:              pulumi.String(cfg.Require("region")),
		UserProjectOverride: pulumi.Bool(true),
		DefaultLabels: pulumi.StringMap{
			"app":   pulumi.String("expense-dashboard"),
			"stack": pulumi.String(ctx.Stack()),
		},
	})
}
