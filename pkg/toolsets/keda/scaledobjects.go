package keda

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initScaledObjects() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_scaled_objects",
			Description: "List KEDA scaled objects with scale target, replica bounds, triggers and condition status. Returns an empty list when KEDA is not installed. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list scaled objects from. If not provided, lists scaled objects from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "ScaledObjects: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: scaledObjectsList},
	}
}

func scaledObjectsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	scaledObjects, err := kubernetes.NewCore(params).ScaledObjectsList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list scaled objects: %w", err)), nil
	}
	if len(scaledObjects) == 0 {
		return api.NewToolCallResult("No scaled objects found", nil), nil
	}
	content, err := params.ListOutput.Marshal(scaledObjects)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to marshal scaled objects: %w", err)), nil
	}
	return api.NewToolCallResult(content, nil), nil
}
