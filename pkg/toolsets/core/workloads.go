package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initWorkloads() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_deployments",
			Description: "List deployments with replica readiness, rollout progress and age. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list deployments from. If not provided, lists deployments from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Deployments: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: deploymentsList},
		{Tool: api.Tool{
			Name:        "get_deployment",
			Description: "Get the detail of a single deployment: images, replica count, strategy, conditions, labels and annotations",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Namespace of the deployment",
					},
					"name": {
						Type:        "string",
						Description: "Name of the deployment",
					},
				},
				Required: []string{"namespace", "name"},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Deployments: Get",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: deploymentsGet},
		{Tool: api.Tool{
			Name:        "list_cronjobs",
			Description: "List cron jobs with schedule, suspend state, active count and last schedule time. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list cron jobs from. If not provided, lists cron jobs from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "CronJobs: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: cronJobsList},
		{Tool: api.Tool{
			Name:        "list_jobs",
			Description: "List jobs with completion ratio, derived status (Complete, Failed or Running) and duration. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list jobs from. If not provided, lists jobs from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Jobs: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: jobsList},
	}
}

func deploymentsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	deployments, err := kubernetes.NewCore(params).DeploymentsList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list deployments: %w", err)), nil
	}
	if len(deployments) == 0 {
		return api.NewToolCallResult("No deployments found", nil), nil
	}
	return marshalResult(params, deployments, "deployments")
}

func deploymentsGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace, err := api.RequiredString(params, "namespace")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	name, err := api.RequiredString(params, "name")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	deployment, err := kubernetes.NewCore(params).DeploymentGet(params, namespace, name)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get deployment %s in namespace %s: %w", name, namespace, err)), nil
	}
	return marshalResult(params, deployment, "deployment")
}

func cronJobsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	cronJobs, err := kubernetes.NewCore(params).CronJobsList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list cron jobs: %w", err)), nil
	}
	if len(cronJobs) == 0 {
		return api.NewToolCallResult("No cron jobs found", nil), nil
	}
	return marshalResult(params, cronJobs, "cron jobs")
}

func jobsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	jobs, err := kubernetes.NewCore(params).JobsList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list jobs: %w", err)), nil
	}
	if len(jobs) == 0 {
		return api.NewToolCallResult("No jobs found", nil), nil
	}
	return marshalResult(params, jobs, "jobs")
}
