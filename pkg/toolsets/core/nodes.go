package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initNodes() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_nodes",
			Description: "List all nodes in the current cluster with status, roles, kubelet version, operating system and age",
			InputSchema: &jsonschema.Schema{
				Type: "object",
			},
			Annotations: api.ToolAnnotations{
				Title:         "Nodes: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: nodesList},
		{Tool: api.Tool{
			Name:        "get_node",
			Description: "Get the detail of a single node: capacity, allocatable resources, taints, conditions and addresses",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name": {
						Type:        "string",
						Description: "Name of the node",
					},
				},
				Required: []string{"name"},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Nodes: Get",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: nodesGet},
	}
}

func nodesList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	nodes, err := kubernetes.NewCore(params).NodesList(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list nodes: %w", err)), nil
	}
	if len(nodes) == 0 {
		return api.NewToolCallResult("No nodes found", nil), nil
	}
	return marshalResult(params, nodes, "nodes")
}

func nodesGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	name, err := api.RequiredString(params, "name")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	node, err := kubernetes.NewCore(params).NodeGet(params, name)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get node %s: %w", name, err)), nil
	}
	return marshalResult(params, node, "node")
}
