package traefik

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initIngressRoutes() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_ingress_routes",
			Description: "List Traefik ingress routes with entry points and routing rules. Returns an empty list when Traefik is not installed. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list ingress routes from. If not provided, lists ingress routes from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "IngressRoutes: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: ingressRoutesList},
	}
}

func ingressRoutesList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	routes, err := kubernetes.NewCore(params).IngressRoutesList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list ingress routes: %w", err)), nil
	}
	if len(routes) == 0 {
		return api.NewToolCallResult("No ingress routes found", nil), nil
	}
	content, err := params.ListOutput.Marshal(routes)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to marshal ingress routes: %w", err)), nil
	}
	return api.NewToolCallResult(content, nil), nil
}
