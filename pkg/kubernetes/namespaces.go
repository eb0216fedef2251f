package kubernetes

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func (c *Core) NamespacesList(ctx context.Context) ([]NamespaceSummary, error) {
	namespaces, err := c.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]NamespaceSummary, 0, len(namespaces.Items))
	for _, ns := range namespaces.Items {
		summaries = append(summaries, NamespaceSummary{
			Name:   ns.Name,
			Status: string(ns.Status.Phase),
			Age:    FormatAge(ns.CreationTimestamp),
		})
	}
	return summaries, nil
}
