package core

import (
	"fmt"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
)

// marshalResult renders a normalized value with the configured list output.
func marshalResult(params api.ToolHandlerParams, v any, what string) (*api.ToolCallResult, error) {
	content, err := params.ListOutput.Marshal(v)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to marshal %s: %w", what, err)), nil
	}
	return api.NewToolCallResult(content, nil), nil
}
