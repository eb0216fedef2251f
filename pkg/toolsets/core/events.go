package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initEvents() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_events",
			Description: "List cluster events (warnings, errors, state changes) sorted newest first. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to retrieve the events from. If not provided, lists events from all namespaces",
					},
					"limit": {
						Type:        "integer",
						Description: "Optional maximum number of events to return (default: 50)",
						Default:     api.ToRawMessage(kubernetes.DefaultEventLimit),
						Minimum:     ptr.To(float64(1)),
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Events: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: eventsList},
	}
}

func eventsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	limit := api.OptionalInt64(params, "limit", int64(kubernetes.DefaultEventLimit))
	events, err := kubernetes.NewCore(params).EventsList(params, namespace, int(limit))
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list events: %w", err)), nil
	}
	if len(events) == 0 {
		return api.NewToolCallResult("No events found", nil), nil
	}
	return marshalResult(params, events, "events")
}
