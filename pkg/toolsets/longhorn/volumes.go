package longhorn

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initVolumes() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_longhorn_volumes",
			Description: "List Longhorn volumes with state, robustness, size, replica count and the bound claim. Returns an empty list when Longhorn is not installed",
			InputSchema: &jsonschema.Schema{
				Type: "object",
			},
			Annotations: api.ToolAnnotations{
				Title:         "Longhorn Volumes: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: volumesList},
	}
}

func volumesList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	volumes, err := kubernetes.NewCore(params).LonghornVolumesList(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list Longhorn volumes: %w", err)), nil
	}
	if len(volumes) == 0 {
		return api.NewToolCallResult("No Longhorn volumes found", nil), nil
	}
	content, err := params.ListOutput.Marshal(volumes)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to marshal Longhorn volumes: %w", err)), nil
	}
	return api.NewToolCallResult(content, nil), nil
}
