package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initServices() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_services",
			Description: "List services with type, cluster IP, external IPs and ports. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list services from. If not provided, lists services from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Services: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: servicesList},
	}
}

func servicesList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	services, err := kubernetes.NewCore(params).ServicesList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list services: %w", err)), nil
	}
	if len(services) == 0 {
		return api.NewToolCallResult("No services found", nil), nil
	}
	return marshalResult(params, services, "services")
}
