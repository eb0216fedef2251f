package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initStorage() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_pvcs",
			Description: "List persistent volume claims with status, bound volume, capacity, access modes and storage class. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list persistent volume claims from. If not provided, lists claims from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "PersistentVolumeClaims: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: pvcsList},
	}
}

func pvcsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	pvcs, err := kubernetes.NewCore(params).PVCsList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list persistent volume claims: %w", err)), nil
	}
	if len(pvcs) == 0 {
		return api.NewToolCallResult("No persistent volume claims found", nil), nil
	}
	return marshalResult(params, pvcs, "persistent volume claims")
}
