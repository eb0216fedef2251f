package kubernetes

import (
	"fmt"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth/oidc"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/clusterview/cluster-mcp-server/pkg/api"
	"github.com/clusterview/cluster-mcp-server/pkg/config"
)

// InClusterConfig is a variable that holds the function to get the in-cluster config
// Exposed for testing
var InClusterConfig = func() (*rest.Config, error) {
	inClusterConfig, err := rest.InClusterConfig()
	if inClusterConfig != nil {
		inClusterConfig.Host = "https://kubernetes.default.svc"
	}
	return inClusterConfig, err
}

// IsInCluster reports whether the server should use the ambient in-cluster
// identity. An explicit kubeconfig always wins over in-cluster detection.
func IsInCluster(cfg *config.StaticConfig) bool {
	if cfg != nil && cfg.KubeConfig != "" {
		return false
	}
	restConfig, err := InClusterConfig()
	return err == nil && restConfig != nil
}

// Manager holds the process-wide connection to the cluster.
// It is constructed once at startup and never mutated afterwards, so
// concurrent tool invocations can share it safely.
type Manager struct {
	kubernetes.Interface
	cfg           *rest.Config
	dynamicClient dynamic.Interface
	namespace     string
}

var _ api.KubernetesClient = (*Manager)(nil)

// NewManager resolves credentials (in-cluster identity or kubeconfig) and
// builds the shared typed and dynamic clients.
func NewManager(staticConfig *config.StaticConfig) (*Manager, error) {
	if IsInCluster(staticConfig) {
		return NewInClusterManager(staticConfig)
	}
	return NewKubeconfigManager(staticConfig)
}

func NewKubeconfigManager(staticConfig *config.StaticConfig) (*Manager, error) {
	pathOptions := clientcmd.NewDefaultPathOptions()
	if staticConfig.KubeConfig != "" {
		pathOptions.LoadingRules.ExplicitPath = staticConfig.KubeConfig
	}
	clientCmdConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		pathOptions.LoadingRules,
		&clientcmd.ConfigOverrides{ClusterInfo: clientcmdapi.Cluster{Server: ""}})

	restConfig, err := clientCmdConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes rest config from kubeconfig: %v", err)
	}

	namespace := staticConfig.Namespace
	if namespace == "" {
		namespace, _, _ = clientCmdConfig.Namespace()
	}
	return newManager(restConfig, namespace)
}

func NewInClusterManager(staticConfig *config.StaticConfig) (*Manager, error) {
	restConfig, err := InClusterConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create in-cluster kubernetes rest config: %v", err)
	}
	return newManager(restConfig, staticConfig.Namespace)
}

func newManager(restConfig *rest.Config, namespace string) (*Manager, error) {
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes clientset: %v", err)
	}
	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes dynamic client: %v", err)
	}
	return &Manager{
		Interface:     clientset,
		cfg:           restConfig,
		dynamicClient: dynamicClient,
		namespace:     namespace,
	}, nil
}

func (m *Manager) NamespaceOrDefault(namespace string) string {
	if namespace != "" {
		return namespace
	}
	if m.namespace != "" {
		return m.namespace
	}
	return "default"
}

func (m *Manager) DiscoveryClient() discovery.DiscoveryInterface {
	return m.Discovery()
}

func (m *Manager) DynamicClient() dynamic.Interface {
	return m.dynamicClient
}
