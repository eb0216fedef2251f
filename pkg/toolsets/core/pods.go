package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
)

func initPods() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "list_pods",
			Description: "List pods with status, readiness, restart count, age and node. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to list pods from. If not provided, lists pods from all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Pods: List",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: podsList},
		{Tool: api.Tool{
			Name:        "get_pod",
			Description: "Get the detail of a single pod: containers, conditions, IP and its 10 most recent events",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Namespace of the pod",
					},
					"name": {
						Type:        "string",
						Description: "Name of the pod",
					},
				},
				Required: []string{"namespace", "name"},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Pods: Get",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: podsGet},
		{Tool: api.Tool{
			Name:        "get_pod_logs",
			Description: "Get the logs of a container in a pod. Returns the last 100 lines unless tailLines is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Namespace of the pod",
					},
					"name": {
						Type:        "string",
						Description: "Name of the pod",
					},
					"container": {
						Type:        "string",
						Description: "Optional container name. Defaults to the only or first container",
					},
					"tailLines": {
						Type:        "integer",
						Description: "Optional number of lines to retrieve from the end of the logs (default: 100)",
						Default:     api.ToRawMessage(kubernetes.DefaultTailLines),
						Minimum:     ptr.To(float64(0)),
					},
					"sinceSeconds": {
						Type:        "integer",
						Description: "Optional age in seconds of the oldest line to retrieve",
						Minimum:     ptr.To(float64(1)),
					},
					"previous": {
						Type:        "boolean",
						Description: "Return logs of the previous terminated container (default: false)",
					},
				},
				Required: []string{"namespace", "name"},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Pods: Logs",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: podsLogs},
		{Tool: api.Tool{
			Name:        "pod_problems",
			Description: "List pods classified as unhealthy: failed or pending phase, high restart counts, or running with containers not ready. Lists all namespaces unless one is provided",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"namespace": {
						Type:        "string",
						Description: "Optional namespace to inspect. If not provided, inspects all namespaces",
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:         "Pods: Problems",
				ReadOnlyHint:  ptr.To(true),
				OpenWorldHint: ptr.To(true),
			},
		}, Handler: podsProblems},
	}
}

func podsList(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	pods, err := kubernetes.NewCore(params).PodsList(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list pods: %w", err)), nil
	}
	if len(pods) == 0 {
		return api.NewToolCallResult("No pods found", nil), nil
	}
	return marshalResult(params, pods, "pods")
}

func podsGet(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace, err := api.RequiredString(params, "namespace")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	name, err := api.RequiredString(params, "name")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	pod, err := kubernetes.NewCore(params).PodGet(params, namespace, name)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get pod %s in namespace %s: %w", name, namespace, err)), nil
	}
	return marshalResult(params, pod, "pod")
}

type podLogs struct {
	Logs string `json:"logs"`
}

func podsLogs(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace, err := api.RequiredString(params, "namespace")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	name, err := api.RequiredString(params, "name")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	container := api.OptionalString(params, "container", "")
	tailLines := api.OptionalInt64(params, "tailLines", kubernetes.DefaultTailLines)
	sinceSeconds := api.OptionalInt64(params, "sinceSeconds", 0)
	previous := api.OptionalBool(params, "previous", false)
	logs, err := kubernetes.NewCore(params).PodLogs(params, namespace, name, container, tailLines, sinceSeconds, previous)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get logs for pod %s in namespace %s: %w", name, namespace, err)), nil
	}
	return marshalResult(params, podLogs{Logs: logs}, "pod logs")
}

func podsProblems(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	namespace := api.OptionalString(params, "namespace", "")
	problems, err := kubernetes.NewCore(params).PodProblems(params, namespace)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list pod problems: %w", err)), nil
	}
	if len(problems) == 0 {
		return api.NewToolCallResult("No pod problems found", nil), nil
	}
	return marshalResult(params, problems, "pod problems")
}
