package mcp

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"
)

func toolCallLoggingMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		params, ok := req.GetParams().(*mcp.CallToolParamsRaw)
		if !ok {
			return next(ctx, method, req)
		}
		id := uuid.NewString()
		if toolCallRequest, err := GoSdkToolCallParamsToToolCallRequest(params); err == nil {
			klog.V(5).Infof("mcp tool call %s: %s(%v)", id, toolCallRequest.Name, toolCallRequest.GetArguments())
		}
		start := time.Now()
		result, err := next(ctx, method, req)
		klog.V(5).Infof("mcp tool call %s: %s completed in %s", id, params.Name, time.Since(start))
		return result, err
	}
}

// unknownToolGuardMiddleware turns calls to unregistered tool names into
// error-flagged results instead of protocol errors.
func (s *Server) unknownToolGuardMiddleware() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method == "tools/call" {
				if params, ok := req.GetParams().(*mcp.CallToolParamsRaw); ok {
					if !slices.Contains(s.enabledTools, params.Name) {
						return NewTextResult("", fmt.Errorf("tool %s not found", params.Name)), nil
					}
				}
			}
			return next(ctx, method, req)
		}
	}
}

func (s *Server) metricsMiddleware() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			params, ok := req.GetParams().(*mcp.CallToolParamsRaw)
			if method != "tools/call" || !ok {
				return next(ctx, method, req)
			}
			start := time.Now()
			result, err := next(ctx, method, req)

			failed := err != nil
			if callResult, ok := result.(*mcp.CallToolResult); ok && callResult.IsError {
				failed = true
			}
			s.metrics.RecordToolCall(params.Name, time.Since(start), failed)

			return result, err
		}
	}
}
