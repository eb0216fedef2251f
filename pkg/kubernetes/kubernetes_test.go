package kubernetes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/rest"

	"github.com/clusterview/cluster-mcp-server/pkg/config"
)

func TestIsInCluster(t *testing.T) {
	original := InClusterConfig
	t.Cleanup(func() { InClusterConfig = original })

	t.Run("explicit kubeconfig wins", func(t *testing.T) {
		InClusterConfig = func() (*rest.Config, error) {
			return &rest.Config{}, nil
		}
		assert.False(t, IsInCluster(&config.StaticConfig{KubeConfig: "/home/user/.kube/config"}))
	})
	t.Run("ambient identity", func(t *testing.T) {
		InClusterConfig = func() (*rest.Config, error) {
			return &rest.Config{}, nil
		}
		assert.True(t, IsInCluster(&config.StaticConfig{}))
	})
	t.Run("no ambient identity", func(t *testing.T) {
		InClusterConfig = func() (*rest.Config, error) {
			return nil, errors.New("unable to load in-cluster configuration")
		}
		assert.False(t, IsInCluster(&config.StaticConfig{}))
	})
}

func TestManagerNamespaceOrDefault(t *testing.T) {
	manager := &Manager{namespace: "team-a"}
	assert.Equal(t, "explicit", manager.NamespaceOrDefault("explicit"))
	assert.Equal(t, "team-a", manager.NamespaceOrDefault(""))
	assert.Equal(t, "default", (&Manager{}).NamespaceOrDefault(""))
}

func TestNamespacesList(t *testing.T) {
	namespace := &v1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name:              "team-a",
			CreationTimestamp: metav1.Now(),
		},
		Status: v1.NamespaceStatus{Phase: v1.NamespaceActive},
	}
	core, _, _ := newFakeCore([]runtime.Object{namespace})

	namespaces, err := core.NamespacesList(context.Background())
	require.NoError(t, err)
	require.Len(t, namespaces, 1)
	assert.Equal(t, "team-a", namespaces[0].Name)
	assert.Equal(t, "Active", namespaces[0].Status)
}
