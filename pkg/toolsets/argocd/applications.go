package argocd

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initApplications() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_argocd_apps",
			Description: "List Argo CD applications with sync status, health status and source. Returns an empty list when Argo CD is not installed",
			InputSchema: &jsonschema.Schema{
				Type: "object",
			},
			Annotations: api.ToolAnnotations{
				Title:         "ArgoCD Applications: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: applicationsList},
		{Tool: api.Tool{
			Name:        "get_argocd_app",
			Description: "Get the detail of a single Argo CD application: conditions, per-resource health and the 10 most recent deployments",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name": {
						Type:        "string",
						Description: "Name of the application",
					},
				},
				Required: []string{"name"},
			},
			Annotations: api.ToolAnnotations{
				Title:         "ArgoCD Applications: Get",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: applicationsGet},
	}
}

func applicationsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	apps, err := kubernetes.NewCore(params).ArgoCDAppsList(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list Argo CD applications: %w", err)), nil
	}
	if len(apps) == 0 {
		return api.NewToolCallResult("No Argo CD applications found", nil), nil
	}
	content, err := params.ListOutput.Marshal(apps)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to marshal Argo CD applications: %w", err)), nil
	}
	return api.NewToolCallResult(content, nil), nil
}

func applicationsGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	name, err := api.RequiredString(params, "name")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	app, err := kubernetes.NewCore(params).ArgoCDAppGet(params, name)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get Argo CD application %s: %w", name, err)), nil
	}
	if app == nil {
		return api.NewToolCallResult("", fmt.Errorf("Argo CD application %s not found", name)), nil
	}
	content, err := params.ListOutput.Marshal(app)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to marshal Argo CD application: %w", err)), nil
	}
	return api.NewToolCallResult(content, nil), nil
}
