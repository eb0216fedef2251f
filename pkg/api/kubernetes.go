package api

import (
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
)

// KubernetesClient defines the interface for Kubernetes operations that tool handlers need.
// This interface abstracts the concrete Kubernetes implementation to allow controlled access
// to the underlying resource APIs, better decoupling, and testability.
type KubernetesClient interface {
	kubernetes.Interface
	// NamespaceOrDefault returns the provided namespace or the default configured namespace if empty
	NamespaceOrDefault(namespace string) string
	// DiscoveryClient returns the discovery client
	DiscoveryClient() discovery.DiscoveryInterface
	// DynamicClient returns the dynamic client, used for custom resource access
	DynamicClient() dynamic.Interface
}
