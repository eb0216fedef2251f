package kubernetes

import (
	"context"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

var longhornVolumeGvr = schema.GroupVersionResource{
	Group: "longhorn.io", Version: "v1beta2", Resource: "volumes",
}

// LonghornVolumesList lists Longhorn volumes across all namespaces. Clusters
// without Longhorn installed yield an empty list.
func (c *Core) LonghornVolumesList(ctx context.Context) ([]LonghornVolumeSummary, error) {
	volumes := c.listCustomResources(ctx, longhornVolumeGvr, "")
	summaries := make([]LonghornVolumeSummary, 0, len(volumes))
	for _, volume := range volumes {
		summaries = append(summaries, LonghornVolumeSummary{
			Name:       volume.GetName(),
			State:      nestedString(volume.Object, "Unknown", "status", "state"),
			Robustness: nestedString(volume.Object, "Unknown", "status", "robustness"),
			AccessMode: nestedString(volume.Object, "Unknown", "spec", "accessMode"),
			Size:       nestedString(volume.Object, "Unknown", "spec", "size"),
			Replicas:   nestedInt64(volume.Object, 0, "spec", "numberOfReplicas"),
			Namespace:  nestedString(volume.Object, "", "status", "kubernetesStatus", "namespace"),
			Claim:      nestedString(volume.Object, "", "status", "kubernetesStatus", "pvcName"),
			Age:        FormatAge(volume.GetCreationTimestamp()),
		})
	}
	return summaries, nil
}
