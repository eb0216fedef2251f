package kubernetes

import (
	"context"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var scaledObjectGvr = schema.GroupVersionResource{
	Group: "keda.sh", Version: "v1alpha1", Resource: "scaledobjects",
}

// ScaledObjectsList lists KEDA scaled objects in the given namespace, or
// across all namespaces when namespace is empty. Clusters without KEDA
// installed yield an empty list.
func (c *Core) ScaledObjectsList(ctx context.Context, namespace string) ([]ScaledObjectSummary, error) {
	scaledObjects := c.listCustomResources(ctx, scaledObjectGvr, namespace)
	summaries := make([]ScaledObjectSummary, 0, len(scaledObjects))
	for _, scaledObject := range scaledObjects {
		summaries = append(summaries, ScaledObjectSummary{
			Namespace:   scaledObject.GetNamespace(),
			Name:        scaledObject.GetName(),
			ScaleTarget: nestedString(scaledObject.Object, "Unknown", "spec", "scaleTargetRef", "name"),
			MinReplicas: nestedInt64(scaledObject.Object, 0, "spec", "minReplicaCount"),
			MaxReplicas: nestedInt64(scaledObject.Object, 0, "spec", "maxReplicaCount"),
			Triggers:    scaledObjectTriggers(&scaledObject),
			Ready:       scaledObjectCondition(&scaledObject, "Ready"),
			Active:      scaledObjectCondition(&scaledObject, "Active"),
			Age:         FormatAge(scaledObject.GetCreationTimestamp()),
		})
	}
	return summaries, nil
}

// scaledObjectTriggers joins the trigger types of a scaled object,
// e.g. "cron,prometheus".
func scaledObjectTriggers(scaledObject *unstructured.Unstructured) string {
	types := make([]string, 0)
	for _, rawTrigger := range nestedSlice(scaledObject.Object, "spec", "triggers") {
		trigger, ok := rawTrigger.(map[string]any)
		if !ok {
			continue
		}
		types = append(types, nestedString(trigger, "Unknown", "type"))
	}
	return strings.Join(types, ",")
}

func scaledObjectCondition(scaledObject *unstructured.Unstructured, conditionType string) string {
	for _, rawCondition := range nestedSlice(scaledObject.Object, "status", "conditions") {
		condition, ok := rawCondition.(map[string]any)
		if !ok {
			continue
		}
		if nestedString(condition, "", "type") == conditionType {
			return nestedString(condition, "Unknown", "status")
		}
	}
	return "Unknown"
}
