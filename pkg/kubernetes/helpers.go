package kubernetes

import (
	"fmt"
	"time"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// FormatAge renders the elapsed time since t as a coarse human string:
// "3d4h" above one day, "4h20m" above one hour, "42m" below that.
// A zero instant renders as "unknown".
func FormatAge(t metav1.Time) string {
	return formatAge(t.Time, time.Now())
}

func formatAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60
	if days >= 1 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	if hours >= 1 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// formatRatio renders a ready/total pair as "X/Y". Zero totals render as
// "0/0", never an error.
func formatRatio(ready, total int) string {
	return fmt.Sprintf("%d/%d", ready, total)
}

// formatTimestamp renders a cluster timestamp as RFC3339, or "unknown" when absent.
func formatTimestamp(t metav1.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(time.RFC3339)
}

// containerState classifies the three mutually exclusive container state
// sub-objects. Priority order is running, waiting, terminated; the first
// present wins. Waiting and terminated states carry the cluster reason.
func containerState(cs v1.ContainerStatus) (state, reason string) {
	switch {
	case cs.State.Running != nil:
		return "running", ""
	case cs.State.Waiting != nil:
		return "waiting", cs.State.Waiting.Reason
	case cs.State.Terminated != nil:
		return "terminated", cs.State.Terminated.Reason
	}
	return "unknown", ""
}

// sumRestarts aggregates per-container restart counts; an absent container
// status collection sums to 0.
func sumRestarts(statuses []v1.ContainerStatus) int32 {
	var restarts int32
	for _, cs := range statuses {
		restarts += cs.RestartCount
	}
	return restarts
}

func conditionsFromPod(conditions []v1.PodCondition) []Condition {
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		out = append(out, Condition{
			Type:    string(c.Type),
			Status:  string(c.Status),
			Reason:  c.Reason,
			Message: c.Message,
		})
	}
	return out
}

func conditionsFromNode(conditions []v1.NodeCondition) []Condition {
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		out = append(out, Condition{
			Type:    string(c.Type),
			Status:  string(c.Status),
			Reason:  c.Reason,
			Message: c.Message,
		})
	}
	return out
}
