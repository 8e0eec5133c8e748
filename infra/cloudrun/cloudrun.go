package cloudrun

import (
	"fmt"
	"strconv"

	"github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudrun"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/expense-dashboard/infra/common"
)

// SetupCloudRun builds the API image and deploys it as a public Cloud Run
// service. It returns the service URL.
func SetupCloudRun(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (pulumi.StringOutput, error) {
	img, err := buildApiImage(ctx, res...)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	srv, err := enableCloudRun(ctx, prov)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	apiSA, err := createServiceAccount(ctx, prov)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	svc, err := createCloudRunService(ctx, img, apiSA, prov, srv)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	if err := setIAMAccessPolicy(ctx, svc, prov); err != nil {
		return pulumi.StringOutput{}, err
	}

	return svc.Statuses.Index(pulumi.Int(0)).Url().Elem(), nil
}

func buildApiImage(ctx *pulumi.Context, res ...pulumi.Resource) (*docker.Image, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	hash, err := common.SourceHash("..")
	if err != nil {
		return nil, err
	}

	return docker.NewImage(ctx, "apiImage", &docker.ImageArgs{
		Build: docker.DockerBuildArgs{
			Platform:   pulumi.String("linux/amd64"),
			Context:    pulumi.String(".."),
			Dockerfile: pulumi.String("../cmd/api/Dockerfile"),
		},
		ImageName: pulumi.String(fmt.Sprintf("%s-docker.pkg.dev/%s/expenses/expense-api:%s", region, projectID, hash)),
	},
		pulumi.DependsOn(res),
	)
}

func enableCloudRun(ctx *pulumi.Context, prov *gcp.Provider) (*projects.Service, error) {
	return projects.NewService(ctx, "cloudRunService", &projects.ServiceArgs{
		Service: pulumi.String("run.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
}

// the API keeps its records in memory, so the account needs no roles.
func createServiceAccount(ctx *pulumi.Context, prov *gcp.Provider) (*serviceaccount.Account, error) {
	return serviceaccount.NewAccount(ctx, "apiServiceAccount", &serviceaccount.AccountArgs{
		AccountId:   pulumi.String("expense-api"),
		DisplayName: pulumi.String("Expense API Service Account"),
	},
		pulumi.Provider(prov),
	)
}

func createCloudRunService(ctx *pulumi.Context,
	img *docker.Image,
	apiSA *serviceaccount.Account,
	prov *gcp.Provider,
	res ...pulumi.Resource) (*cloudrun.Service, error) {
	gcpCfg := config.New(ctx, "gcp")
	crCfg := config.New(ctx, "cloudrun")
	apiCfg := config.New(ctx, "api")

	region := gcpCfg.Require("region")
	cpu := crCfg.Require("cpu")
	memory := crCfg.Require("memory")
	concurrency := crCfg.Require("concurrency")
	logLevel := crCfg.Require("logLevel")
	timeout, _ := strconv.Atoi(crCfg.Require("timeout"))

	corsOrigins := apiCfg.Get("corsOrigins")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	seedSamples := apiCfg.Get("seedSamples")
	if seedSamples == "" {
		seedSamples = "true"
	}

	return cloudrun.NewService(ctx, "apiService", &cloudrun.ServiceArgs{
		Location: pulumi.String(region),

		Template: &cloudrun.ServiceTemplateArgs{
			Metadata: &cloudrun.ServiceTemplateMetadataArgs{
				Annotations: pulumi.StringMap{
					// records live in one process, so a single instance
					"autoscaling.knative.dev/minScale": pulumi.String("1"),
					"autoscaling.knative.dev/maxScale": pulumi.String("1"),

					"run.googleapis.com/cpu":                   pulumi.String(cpu),
					"run.googleapis.com/memory":                pulumi.String(memory),
					"run.googleapis.com/cpu-throttling":        pulumi.String("true"),
					"run.googleapis.com/container-concurrency": pulumi.String(concurrency),
				},
			},

			Spec: &cloudrun.ServiceTemplateSpecArgs{
				ServiceAccountName: apiSA.Email,
				TimeoutSeconds:     pulumi.Int(timeout),

				Containers: cloudrun.ServiceTemplateSpecContainerArray{
					&cloudrun.ServiceTemplateSpecContainerArgs{
						Image: img.ImageName,
						Ports: cloudrun.ServiceTemplateSpecContainerPortArray{
							&cloudrun.ServiceTemplateSpecContainerPortArgs{
								ContainerPort: pulumi.Int(8080),
							},
						},
						Envs: cloudrun.ServiceTemplateSpecContainerEnvArray{
							&cloudrun.ServiceTemplateSpecContainerEnvArgs{
								Name:  pulumi.String("LOGLEVEL"),
								Value: pulumi.String(logLevel),
							},
							&cloudrun.ServiceTemplateSpecContainerEnvArgs{
								Name:  pulumi.String("CORS_ORIGINS"),
								Value: pulumi.String(corsOrigins),
							},
							&cloudrun.ServiceTemplateSpecContainerEnvArgs{
								Name:  pulumi.String("SEED_SAMPLES"),
								Value: pulumi.String(seedSamples),
							},
						},
					},
				},
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

func setIAMAccessPolicy(ctx *pulumi.Context, svc *cloudrun.Service, prov *gcp.Provider) error {
	gcpCfg := config.New(ctx, "gcp")
	region := gcpCfg.Require("region")

	_, err := cloudrun.NewIamMember(ctx, "publicInvoker", &cloudrun.IamMemberArgs{
		Service:  svc.Name,
		Location: pulumi.String(region),
		Role:     pulumi.String("roles/run.invoker"),
		Member:   pulumi.String("allUsers"),
	},
		pulumi.Provider(prov),
	)
	return err
}
