package kubernetes

import "github.com/clusterview/cluster-mcp-server/pkg/api"

// Core exposes the normalization operations on top of any api.KubernetesClient.
type Core struct {
	api.KubernetesClient
}

func NewCore(client api.KubernetesClient) *Core {
	return &Core{
		KubernetesClient: client,
	}
}
