package kubernetes

import (
	"context"
	"sort"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var argoCDAppGvr = schema.GroupVersionResource{
	Group: "argoproj.io", Version: "v1alpha1", Resource: "applications",
}

// argoCDHistoryLimit caps the deploy history carried in the detail view.
const argoCDHistoryLimit = 10

// ArgoCDAppsList lists Argo CD applications across all namespaces. Clusters
// without Argo CD installed yield an empty list.
func (c *Core) ArgoCDAppsList(ctx context.Context) ([]ArgoCDAppSummary, error) {
	apps := c.listCustomResources(ctx, argoCDAppGvr, "")
	summaries := make([]ArgoCDAppSummary, 0, len(apps))
	for _, app := range apps {
		summaries = append(summaries, summarizeArgoCDApp(&app))
	}
	return summaries, nil
}

// ArgoCDAppGet returns the detail view of a single Argo CD application,
// located by name across all namespaces. A missing application or a cluster
// without Argo CD yields nil, not an error.
func (c *Core) ArgoCDAppGet(ctx context.Context, name string) (*ArgoCDAppDetail, error) {
	for _, app := range c.listCustomResources(ctx, argoCDAppGvr, "") {
		if app.GetName() != name {
			continue
		}
		return &ArgoCDAppDetail{
			ArgoCDAppSummary: summarizeArgoCDApp(&app),
			Conditions:       argoCDConditions(&app),
			Resources:        argoCDResources(&app),
			History:          argoCDHistory(&app),
		}, nil
	}
	return nil, nil
}

func summarizeArgoCDApp(app *unstructured.Unstructured) ArgoCDAppSummary {
	return ArgoCDAppSummary{
		Namespace:    app.GetNamespace(),
		Name:         app.GetName(),
		SyncStatus:   nestedString(app.Object, "Unknown", "status", "sync", "status"),
		HealthStatus: nestedString(app.Object, "Unknown", "status", "health", "status"),
		Repo:         nestedString(app.Object, "Unknown", "spec", "source", "repoURL"),
		Path:         nestedString(app.Object, "", "spec", "source", "path"),
		Revision:     nestedString(app.Object, "Unknown", "spec", "source", "targetRevision"),
		Age:          FormatAge(app.GetCreationTimestamp()),
	}
}

func argoCDConditions(app *unstructured.Unstructured) []Condition {
	conditions := make([]Condition, 0)
	for _, rawCondition := range nestedSlice(app.Object, "status", "conditions") {
		condition, ok := rawCondition.(map[string]any)
		if !ok {
			continue
		}
		conditions = append(conditions, Condition{
			Type:    nestedString(condition, "Unknown", "type"),
			Status:  nestedString(condition, "", "status"),
			Message: nestedString(condition, "", "message"),
		})
	}
	return conditions
}

func argoCDResources(app *unstructured.Unstructured) []ArgoCDResourceHealth {
	resources := make([]ArgoCDResourceHealth, 0)
	for _, rawResource := range nestedSlice(app.Object, "status", "resources") {
		resource, ok := rawResource.(map[string]any)
		if !ok {
			continue
		}
		resources = append(resources, ArgoCDResourceHealth{
			Kind:      nestedString(resource, "Unknown", "kind"),
			Namespace: nestedString(resource, "", "namespace"),
			Name:      nestedString(resource, "Unknown", "name"),
			Status:    nestedString(resource, "Unknown", "status"),
			Health:    nestedString(resource, "Unknown", "health", "status"),
		})
	}
	return resources
}

// argoCDHistory returns the most recent deployments, newest first, capped at
// argoCDHistoryLimit.
func argoCDHistory(app *unstructured.Unstructured) []ArgoCDDeployHistory {
	history := make([]ArgoCDDeployHistory, 0)
	for _, rawEntry := range nestedSlice(app.Object, "status", "history") {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			continue
		}
		history = append(history, ArgoCDDeployHistory{
			ID:         nestedInt64(entry, 0, "id"),
			Revision:   nestedString(entry, "Unknown", "revision"),
			DeployedAt: nestedString(entry, "unknown", "deployedAt"),
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].ID > history[j].ID
	})
	if len(history) > argoCDHistoryLimit {
		history = history[:argoCDHistoryLimit]
	}
	return history
}
