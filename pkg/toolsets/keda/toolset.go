package keda

import (
	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "keda"
}

func (t *Toolset) GetDescription() string {
	return "Read-only tools for KEDA scaled objects"
}

func (t *Toolset) GetTools() []api.ServerTool {
	return initScaledObjects()
}

func init() {
	toolsets.Register(&Toolset{})
}
