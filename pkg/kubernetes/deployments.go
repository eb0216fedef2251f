package kubernetes

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DeploymentsList lists deployments in the given namespace, or across all
// namespaces when namespace is empty.
func (c *Core) DeploymentsList(ctx context.Context, namespace string) ([]DeploymentSummary, error) {
	deployments, err := c.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]DeploymentSummary, 0, len(deployments.Items))
	for _, deployment := range deployments.Items {
		summaries = append(summaries, summarizeDeployment(&deployment))
	}
	return summaries, nil
}

// DeploymentGet returns the detail view of a single deployment.
func (c *Core) DeploymentGet(ctx context.Context, namespace, name string) (*DeploymentDetail, error) {
	deployment, err := c.AppsV1().Deployments(c.NamespaceOrDefault(namespace)).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}
	images := make([]string, 0, len(deployment.Spec.Template.Spec.Containers))
	for _, container := range deployment.Spec.Template.Spec.Containers {
		images = append(images, container.Image)
	}
	conditions := make([]Condition, 0, len(deployment.Status.Conditions))
	for _, condition := range deployment.Status.Conditions {
		conditions = append(conditions, Condition{
			Type:    string(condition.Type),
			Status:  string(condition.Status),
			Reason:  condition.Reason,
			Message: condition.Message,
		})
	}
	return &DeploymentDetail{
		DeploymentSummary: summarizeDeployment(deployment),
		Images:            images,
		Replicas:          desiredReplicas(deployment),
		Strategy:          string(deployment.Spec.Strategy.Type),
		Conditions:        conditions,
		Labels:            deployment.Labels,
		Annotations:       deployment.Annotations,
	}, nil
}

func summarizeDeployment(deployment *appsv1.Deployment) DeploymentSummary {
	return DeploymentSummary{
		Namespace: deployment.Namespace,
		Name:      deployment.Name,
		Ready:     formatRatio(int(deployment.Status.ReadyReplicas), int(desiredReplicas(deployment))),
		UpToDate:  deployment.Status.UpdatedReplicas,
		Available: deployment.Status.AvailableReplicas,
		Age:       FormatAge(deployment.CreationTimestamp),
	}
}

func desiredReplicas(deployment *appsv1.Deployment) int32 {
	if deployment.Spec.Replicas != nil {
		return *deployment.Spec.Replicas
	}
	return 0
}
