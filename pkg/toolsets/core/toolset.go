package core

import (
	"slices"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "core"
}

func (t *Toolset) GetDescription() string {
	return "Read-only tools for built-in cluster resources (Pods, Deployments, Services, Nodes, Events, storage)"
}

func (t *Toolset) GetTools() []api.ServerTool {
	return slices.Concat(
		initCluster(),
		initNamespaces(),
		initPods(),
		initWorkloads(),
		initServices(),
		initNodes(),
		initEvents(),
		initStorage(),
	)
}

func init() {
	toolsets.Register(&Toolset{})
}
