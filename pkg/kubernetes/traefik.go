package kubernetes

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

var ingressRouteGvr = schema.GroupVersionResource{
	Group: "traefik.io", Version: "v1alpha1", Resource: "ingressroutes",
}

// IngressRoutesList lists Traefik ingress routes in the given namespace, or
// across all namespaces when namespace is empty. Clusters without Traefik
// installed yield an empty list.
func (c *Core) IngressRoutesList(ctx context.Context, namespace string) ([]IngressRouteSummary, error) {
	routes := c.listCustomResources(ctx, ingressRouteGvr, namespace)
	summaries := make([]IngressRouteSummary, 0, len(routes))
	for _, route := range routes {
		rules := make([]IngressRouteRule, 0)
		for _, rawRoute := range nestedSlice(route.Object, "spec", "routes") {
			rule, ok := rawRoute.(map[string]any)
			if !ok {
				continue
			}
			services := make([]string, 0)
			for _, rawService := range nestedSlice(rule, "services") {
				service, ok := rawService.(map[string]any)
				if !ok {
					continue
				}
				name := nestedString(service, "Unknown", "name")
				services = append(services, fmt.Sprintf("%s:%d", name, nestedInt64(service, 0, "port")))
			}
			rules = append(rules, IngressRouteRule{
				Match:    nestedString(rule, "", "match"),
				Services: services,
			})
		}
		summaries = append(summaries, IngressRouteSummary{
			Namespace:   route.GetNamespace(),
			Name:        route.GetName(),
			EntryPoints: nestedStringSlice(route.Object, "spec", "entryPoints"),
			Rules:       rules,
			Age:         FormatAge(route.GetCreationTimestamp()),
		})
	}
	return summaries, nil
}
