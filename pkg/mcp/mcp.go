package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/config"
	internalk8s "github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
	"github.com/clusterview/cluster-mcp-server/pkg/metrics"
	"github.com/clusterview/cluster-mcp-server/pkg/output"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
	"github.com/clusterview/cluster-mcp-server/pkg/version"
)

type Configuration struct {
	*config.StaticConfig
	listOutput output.Output
	toolsets   []api.Toolset
}

func (c *Configuration) Toolsets() []api.Toolset {
	if c.toolsets == nil {
		for _, toolset := range c.StaticConfig.Toolsets {
			c.toolsets = append(c.toolsets, toolsets.ToolsetFromString(toolset))
		}
	}
	return c.toolsets
}

func (c *Configuration) ListOutput() output.Output {
	if c.listOutput == nil {
		c.listOutput = output.FromString(c.StaticConfig.ListOutput)
	}
	return c.listOutput
}

func (c *Configuration) isToolApplicable(tool api.ServerTool) bool {
	if c.EnabledTools != nil && !slices.Contains(c.EnabledTools, tool.Tool.Name) {
		return false
	}
	if c.DisabledTools != nil && slices.Contains(c.DisabledTools, tool.Tool.Name) {
		return false
	}
	return true
}

type Server struct {
	configuration *Configuration
	server        *mcp.Server
	enabledTools  []string
	manager       *internalk8s.Manager
	metrics       *metrics.Metrics
}

func NewServer(configuration Configuration, manager *internalk8s.Manager) (*Server, error) {
	s := &Server{
		configuration: &configuration,
		manager:       manager,
		metrics:       metrics.New(),
		server: mcp.NewServer(
			&mcp.Implementation{
				Name:    version.BinaryName,
				Title:   version.BinaryName,
				Version: version.Version,
			},
			&mcp.ServerOptions{
				Capabilities: &mcp.ServerCapabilities{
					Tools:   &mcp.ToolCapabilities{ListChanged: true},
					Logging: &mcp.LoggingCapabilities{},
				},
			}),
	}

	// Middleware runs outermost-first in registration order. Metrics wrap the
	// unknown-tool guard so rejected calls are still counted.
	s.server.AddReceivingMiddleware(toolCallLoggingMiddleware, s.metricsMiddleware(), s.unknownToolGuardMiddleware())
	if err := s.registerTools(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) registerTools() error {
	for _, toolset := range s.configuration.Toolsets() {
		if toolset == nil {
			continue
		}
		for _, tool := range toolset.GetTools() {
			if !s.configuration.isToolApplicable(tool) {
				continue
			}
			goSdkTool, goSdkToolHandler, err := ServerToolToGoSdkTool(s, tool)
			if err != nil {
				return fmt.Errorf("failed to convert tool %s: %w", tool.Tool.Name, err)
			}
			s.server.AddTool(goSdkTool, goSdkToolHandler)
			s.enabledTools = append(s.enabledTools, tool.Tool.Name)
		}
	}
	slices.Sort(s.enabledTools)
	return nil
}

func (s *Server) GetEnabledTools() []string {
	return s.enabledTools
}

// GetMetrics returns the metrics system for use by the HTTP server.
func (s *Server) GetMetrics() *metrics.Metrics {
	return s.metrics
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.LoggingTransport{Transport: &mcp.StdioTransport{}, Writer: os.Stderr})
}

func (s *Server) ServeHTTP() *mcp.StreamableHTTPHandler {
	return mcp.NewStreamableHTTPHandler(func(request *http.Request) *mcp.Server {
		return s.server
	}, &mcp.StreamableHTTPOptions{})
}

// NewTextResult wraps handler output into the result envelope: failures become
// error-flagged text results, never protocol errors.
func NewTextResult(content string, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{
					Text: err.Error(),
				},
			},
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: content,
			},
		},
	}
}
