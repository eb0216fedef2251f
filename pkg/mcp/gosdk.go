package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
)

// ToolCallRequest adapts the raw go-sdk tool call parameters to the
// api.ToolCallRequest consumed by tool handlers.
type ToolCallRequest struct {
	Name      string
	arguments map[string]any
}

var _ api.ToolCallRequest = (*ToolCallRequest)(nil)

func (r *ToolCallRequest) GetArguments() map[string]any {
	return r.arguments
}

func GoSdkToolCallParamsToToolCallRequest(params *mcp.CallToolParamsRaw) (*ToolCallRequest, error) {
	arguments := make(map[string]any)
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &arguments); err != nil {
			return nil, fmt.Errorf("failed to parse tool call arguments: %w", err)
		}
	}
	return &ToolCallRequest{Name: params.Name, arguments: arguments}, nil
}

// ServerToolToGoSdkTool converts an api.ServerTool to MCP SDK types.
// The returned handler is the single error boundary of a tool call: handler
// errors and result errors both collapse into an error-flagged text result.
func ServerToolToGoSdkTool(s *Server, serverTool api.ServerTool) (*mcp.Tool, mcp.ToolHandler, error) {
	tool := &mcp.Tool{
		Name:        serverTool.Tool.Name,
		Description: serverTool.Tool.Description,
		InputSchema: serverTool.Tool.InputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:           serverTool.Tool.Annotations.Title,
			ReadOnlyHint:    ptr.Deref(serverTool.Tool.Annotations.ReadOnlyHint, false),
			DestructiveHint: serverTool.Tool.Annotations.DestructiveHint,
			IdempotentHint:  ptr.Deref(serverTool.Tool.Annotations.IdempotentHint, false),
			OpenWorldHint:   serverTool.Tool.Annotations.OpenWorldHint,
		},
	}

	handler := func(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		toolCallRequest, err := GoSdkToolCallParamsToToolCallRequest(request.Params)
		if err != nil {
			return NewTextResult("", err), nil
		}

		result, err := serverTool.Handler(api.ToolHandlerParams{
			Context:          ctx,
			KubernetesClient: s.manager,
			ToolCallRequest:  toolCallRequest,
			ListOutput:       s.configuration.ListOutput(),
		})
		if err != nil {
			return NewTextResult("", err), nil
		}
		return NewTextResult(result.Content, result.Error), nil
	}

	return tool, handler, nil
}
