package traefik

import (
	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "traefik"
}

func (t *Toolset) GetDescription() string {
	return "Read-only tools for Traefik ingress routes"
}

func (t *Toolset) GetTools() []api.ServerTool {
	return initIngressRoutes()
}

func init() {
	toolsets.Register(&Toolset{})
}
