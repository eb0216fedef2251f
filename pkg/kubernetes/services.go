package kubernetes

import (
	"context"
	"fmt"
	"strings"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ServicesList lists services in the given namespace, or across all
// namespaces when namespace is empty.
func (c *Core) ServicesList(ctx context.Context, namespace string) ([]ServiceSummary, error) {
	services, err := c.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]ServiceSummary, 0, len(services.Items))
	for _, service := range services.Items {
		summaries = append(summaries, ServiceSummary{
			Namespace:  service.Namespace,
			Name:       service.Name,
			Type:       string(service.Spec.Type),
			ClusterIP:  service.Spec.ClusterIP,
			ExternalIP: externalIPs(&service),
			Ports:      joinServicePorts(service.Spec.Ports),
			Age:        FormatAge(service.CreationTimestamp),
		})
	}
	return summaries, nil
}

// externalIPs joins the load-balancer ingress points of a service; empty when
// the service has none.
func externalIPs(service *v1.Service) string {
	ips := make([]string, 0, len(service.Status.LoadBalancer.Ingress))
	for _, ingress := range service.Status.LoadBalancer.Ingress {
		if ingress.IP != "" {
			ips = append(ips, ingress.IP)
		} else if ingress.Hostname != "" {
			ips = append(ips, ingress.Hostname)
		}
	}
	return strings.Join(ips, ",")
}

func joinServicePorts(ports []v1.ServicePort) string {
	rendered := make([]string, 0, len(ports))
	for _, port := range ports {
		rendered = append(rendered, fmt.Sprintf("%d/%s", port.Port, port.Protocol))
	}
	return strings.Join(rendered, ",")
}
