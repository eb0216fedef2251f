package kubernetes

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/klog/v2"
)

// listCustomResources lists instances of an optional custom resource.
// Clusters without the CRD installed are a supported configuration, so every
// failure collapses to an empty result instead of an error.
func (c *Core) listCustomResources(ctx context.Context, gvr schema.GroupVersionResource, namespace string) []unstructured.Unstructured {
	list, err := c.DynamicClient().Resource(gvr).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		klog.V(2).Infof("optional resource %s unavailable: %v", gvr.String(), err)
		return nil
	}
	return list.Items
}

// nestedString reads a string field from an unstructured object, returning
// fallback when the field is absent or not a string.
func nestedString(obj map[string]any, fallback string, fields ...string) string {
	value, found, err := unstructured.NestedString(obj, fields...)
	if !found || err != nil || value == "" {
		return fallback
	}
	return value
}

// nestedInt64 reads an integer field from an unstructured object, returning
// fallback when the field is absent or not an integer.
func nestedInt64(obj map[string]any, fallback int64, fields ...string) int64 {
	value, found, err := unstructured.NestedInt64(obj, fields...)
	if !found || err != nil {
		return fallback
	}
	return value
}

// nestedSlice reads a list field from an unstructured object, returning nil
// when the field is absent.
func nestedSlice(obj map[string]any, fields ...string) []any {
	value, found, err := unstructured.NestedSlice(obj, fields...)
	if !found || err != nil {
		return nil
	}
	return value
}

// nestedStringSlice reads a list-of-strings field from an unstructured
// object, returning nil when the field is absent.
func nestedStringSlice(obj map[string]any, fields ...string) []string {
	value, found, err := unstructured.NestedStringSlice(obj, fields...)
	if !found || err != nil {
		return nil
	}
	return value
}
