package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initNamespaces() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_namespaces",
			Description: "List all namespaces in the current cluster with status and age",
			InputSchema: &jsonschema.Schema{
				Type: "object",
			},
			Annotations: api.ToolAnnotations{
				Title:         "Namespaces: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: namespacesList},
	}
}

func namespacesList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespaces, err := kubernetes.NewCore(params).NamespacesList(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list namespaces: %w", err)), nil
	}
	if len(namespaces) == 0 {
		return api.NewToolCallResult("No namespaces found", nil), nil
	}
	return marshalResult(params, namespaces, "namespaces")
}
