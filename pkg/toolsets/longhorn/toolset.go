package longhorn

import (
	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "longhorn"
}

func (t *Toolset) GetDescription() string {
	return "Read-only tools for Longhorn storage volumes"
}

func (t *Toolset) GetTools() []api.ServerTool {
	return initVolumes()
}

func init() {
	toolsets.Register(&Toolset{})
}
