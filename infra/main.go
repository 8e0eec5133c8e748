package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/expense-dashboard/infra/cloudrun"
	"github.com/GregMSThompson/expense-dashboard/infra/docker"
	"github.com/GregMSThompson/expense-dashboard/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		url, err := cloudrun.SetupCloudRun(ctx, prov, repo)
		if err != nil {
			return err
		}

		ctx.Export("apiUrl", url)
		return nil
	})
}
