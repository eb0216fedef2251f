package kubernetes

import (
	"context"
	"strings"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PVCsList lists persistent volume claims in the given namespace, or across
// all namespaces when namespace is empty.
func (c *Core) PVCsList(ctx context.Context, namespace string) ([]PVCSummary, error) {
	pvcs, err := c.CoreV1().PersistentVolumeClaims(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]PVCSummary, 0, len(pvcs.Items))
	for _, pvc := range pvcs.Items {
		summaries = append(summaries, PVCSummary{
			Namespace:    pvc.Namespace,
			Name:         pvc.Name,
			Status:       string(pvc.Status.Phase),
			Volume:       pvc.Spec.VolumeName,
			Capacity:     pvcCapacity(&pvc),
			AccessModes:  joinAccessModes(pvc.Spec.AccessModes),
			StorageClass: pvcStorageClass(&pvc),
			Age:          FormatAge(pvc.CreationTimestamp),
		})
	}
	return summaries, nil
}

func pvcCapacity(pvc *v1.PersistentVolumeClaim) string {
	if capacity, ok := pvc.Status.Capacity[v1.ResourceStorage]; ok {
		return capacity.String()
	}
	return "Unknown"
}

func pvcStorageClass(pvc *v1.PersistentVolumeClaim) string {
	if pvc.Spec.StorageClassName == nil || *pvc.Spec.StorageClassName == "" {
		return "Unknown"
	}
	return *pvc.Spec.StorageClassName
}

func joinAccessModes(modes []v1.PersistentVolumeAccessMode) string {
	rendered := make([]string, 0, len(modes))
	for _, mode := range modes {
		rendered = append(rendered, string(mode))
	}
	return strings.Join(rendered, ",")
}
