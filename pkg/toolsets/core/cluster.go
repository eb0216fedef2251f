package core

import (
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initCluster() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "cluster_info",
			Description: "Get an overview of the current cluster: server version, platform, and node, namespace and pod counts",
			InputSchema: &jsonschema.Schema{
				Type: "object",
			},
			Annotations: api.ToolAnnotations{
				Title:         "Cluster: Info",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: clusterInfo},
		{Tool: api.Tool{
			Name:        "health",
			Description: "Check connectivity to the cluster API and report the observed latency",
			InputSchema: &jsonschema.Schema{
				Type: "object",
			},
			Annotations: api.ToolAnnotations{
				Title:         "Cluster: Health",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: health},
	}
}

func clusterInfo(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	info, err := kubernetes.NewCore(params).ClusterInfo(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get cluster info: %w", err)), nil
	}
	return marshalResult(params, info, "cluster info")
}

type healthReport struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Details   string `json:"details,omitempty"`
}

// health probes the cluster with a full info read and reports the outcome.
// A failed probe is a result, not an error.
func health(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	start := time.Now()
	_, err := kubernetes.NewCore(params).ClusterInfo(params)
	report := healthReport{
		Status:    "healthy",
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		report.Status = "unavailable"
		report.Details = err.Error()
	}
	return marshalResult(params, report, "health report")
}
