package kubernetes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

func TestNodeRoles(t *testing.T) {
	tests := []struct {
		name     string
		labels   map[string]string
		expected string
	}{
		{"no role labels defaults to worker", map[string]string{"kubernetes.io/hostname": "n1"}, "worker"},
		{"single role", map[string]string{"node-role.kubernetes.io/control-plane": "true"}, "control-plane"},
		{
			"multiple roles sorted",
			map[string]string{
				"node-role.kubernetes.io/master":        "true",
				"node-role.kubernetes.io/control-plane": "true",
			},
			"control-plane,master",
		},
		{"empty suffix ignored", map[string]string{"node-role.kubernetes.io/": "true"}, "worker"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nodeRoles(tt.labels))
		})
	}
}

func TestNodeStatus(t *testing.T) {
	tests := []struct {
		name       string
		conditions []v1.NodeCondition
		expected   string
	}{
		{"ready", []v1.NodeCondition{{Type: v1.NodeReady, Status: v1.ConditionTrue}}, "Ready"},
		{"not ready", []v1.NodeCondition{{Type: v1.NodeReady, Status: v1.ConditionFalse}}, "NotReady"},
		{"no ready condition", []v1.NodeCondition{{Type: v1.NodeMemoryPressure, Status: v1.ConditionFalse}}, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &v1.Node{Status: v1.NodeStatus{Conditions: tt.conditions}}
			assert.Equal(t, tt.expected, nodeStatus(node))
		})
	}
}

func TestNodeGet(t *testing.T) {
	node := &v1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name:   "node-1",
			Labels: map[string]string{"node-role.kubernetes.io/control-plane": "true"},
		},
		Spec: v1.NodeSpec{
			Taints: []v1.Taint{{Key: "node-role.kubernetes.io/control-plane", Value: "true", Effect: v1.TaintEffectNoSchedule}},
		},
		Status: v1.NodeStatus{
			Conditions: []v1.NodeCondition{{Type: v1.NodeReady, Status: v1.ConditionTrue}},
			NodeInfo: v1.NodeSystemInfo{
				KubeletVersion: "v1.33.1+k3s1",
				OSImage:        "Ubuntu 24.04 LTS",
			},
			Capacity: v1.ResourceList{
				v1.ResourceCPU:    resource.MustParse("8"),
				v1.ResourceMemory: resource.MustParse("16Gi"),
			},
			Allocatable: v1.ResourceList{
				v1.ResourceCPU: resource.MustParse("7800m"),
			},
			Addresses: []v1.NodeAddress{{Type: v1.NodeInternalIP, Address: "192.168.1.10"}},
		},
	}
	core, _, _ := newFakeCore([]runtime.Object{node})

	detail, err := core.NodeGet(context.Background(), "node-1")
	require.NoError(t, err)
	assert.Equal(t, "Ready", detail.Status)
	assert.Equal(t, "control-plane", detail.Roles)
	assert.Equal(t, "Ubuntu 24.04 LTS", detail.OS)
	assert.Equal(t, "8", detail.CPU)
	assert.Equal(t, "16Gi", detail.Memory)
	assert.Equal(t, []string{"node-role.kubernetes.io/control-plane=true:NoSchedule"}, detail.Taints)
	assert.Equal(t, "7800m", detail.Allocatable["cpu"])
	assert.Equal(t, "192.168.1.10", detail.Addresses["InternalIP"])
}

func TestNodeGetMissing(t *testing.T) {
	core, _, _ := newFakeCore(nil)
	_, err := core.NodeGet(context.Background(), "missing")
	assert.Error(t, err)
}
