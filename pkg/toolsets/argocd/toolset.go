package argocd

import (
	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "argocd"
}

func (t *Toolset) GetDescription() string {
	return "Read-only tools for Argo CD applications (sync status, health, deploy history)"
}

func (t *Toolset) GetTools() []api.ServerTool {
	return initApplications()
}

func init() {
	toolsets.Register(&Toolset{})
}
