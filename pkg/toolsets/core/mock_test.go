package core

import (
	"context"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/output"
)

type mockToolCallRequest struct {
	args map[string]any
}

func (m *mockToolCallRequest) GetArguments() map[string]any {
	return m.args
}

type mockKubernetesClient struct {
	kubernetes.Interface
	dynamic dynamic.Interface
}

func (m *mockKubernetesClient) NamespaceOrDefault(namespace string) string {
	if namespace == "" {
		return "default"
	}
	return namespace
}

func (m *mockKubernetesClient) DiscoveryClient() discovery.DiscoveryInterface {
	return m.Discovery()
}

func (m *mockKubernetesClient) DynamicClient() dynamic.Interface {
	return m.dynamic
}

// newHandlerParams builds ToolHandlerParams over fake clients, rendering list
// output as JSON so tests can unmarshal the payload.
func newHandlerParams(args map[string]any, objects ...runtime.Object) (api.ToolHandlerParams, *fake.Clientset) {
	clientset := fake.NewSimpleClientset(objects...)
	client := &mockKubernetesClient{
		Interface: clientset,
		dynamic:   dynamicfake.NewSimpleDynamicClient(runtime.NewScheme()),
	}
	return api.ToolHandlerParams{
		Context:          context.Background(),
		KubernetesClient: client,
		ToolCallRequest:  &mockToolCallRequest{args: args},
		ListOutput:       output.Json,
	}, clientset
}
