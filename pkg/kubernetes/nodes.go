package kubernetes

import (
	"context"
	"fmt"
	"sort"
	"strings"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// nodeRoleLabelPrefix is the label-key convention carrying node roles,
// e.g. node-role.kubernetes.io/control-plane.
const nodeRoleLabelPrefix = "node-role.kubernetes.io/"

func (c *Core) NodesList(ctx context.Context) ([]NodeSummary, error) {
	nodes, err := c.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]NodeSummary, 0, len(nodes.Items))
	for _, node := range nodes.Items {
		summaries = append(summaries, summarizeNode(&node))
	}
	return summaries, nil
}

// NodeGet returns the detail view of a single node.
func (c *Core) NodeGet(ctx context.Context, name string) (*NodeDetail, error) {
	node, err := c.CoreV1().Nodes().Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}
	taints := make([]string, 0, len(node.Spec.Taints))
	for _, taint := range node.Spec.Taints {
		taints = append(taints, fmt.Sprintf("%s=%s:%s", taint.Key, taint.Value, taint.Effect))
	}
	addresses := make(map[string]string, len(node.Status.Addresses))
	for _, address := range node.Status.Addresses {
		addresses[string(address.Type)] = address.Address
	}
	return &NodeDetail{
		NodeSummary: summarizeNode(node),
		CPU:         node.Status.Capacity.Cpu().String(),
		Memory:      node.Status.Capacity.Memory().String(),
		Taints:      taints,
		Conditions:  conditionsFromNode(node.Status.Conditions),
		Allocatable: resourceListToMap(node.Status.Allocatable),
		Capacity:    resourceListToMap(node.Status.Capacity),
		Addresses:   addresses,
	}, nil
}

func summarizeNode(node *v1.Node) NodeSummary {
	return NodeSummary{
		Name:    node.Name,
		Status:  nodeStatus(node),
		Roles:   nodeRoles(node.Labels),
		Version: node.Status.NodeInfo.KubeletVersion,
		OS:      nodeOS(node),
		Age:     FormatAge(node.CreationTimestamp),
	}
}

// nodeStatus derives Ready/NotReady from the node Ready condition.
func nodeStatus(node *v1.Node) string {
	for _, condition := range node.Status.Conditions {
		if condition.Type == v1.NodeReady {
			if condition.Status == v1.ConditionTrue {
				return "Ready"
			}
			return "NotReady"
		}
	}
	return "Unknown"
}

// nodeRoles derives the role list from the node-role label-key convention:
// strip the prefix, join the remaining suffixes; "worker" when no role label
// is present.
func nodeRoles(labels map[string]string) string {
	roles := make([]string, 0, 2)
	for key := range labels {
		if role, ok := strings.CutPrefix(key, nodeRoleLabelPrefix); ok && role != "" {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		return "worker"
	}
	sort.Strings(roles)
	return strings.Join(roles, ",")
}

func nodeOS(node *v1.Node) string {
	osImage := node.Status.NodeInfo.OSImage
	if osImage == "" {
		return "Unknown"
	}
	return osImage
}

func resourceListToMap(resources v1.ResourceList) map[string]string {
	out := make(map[string]string, len(resources))
	for name, quantity := range resources {
		out[string(name)] = quantity.String()
	}
	return out
}
