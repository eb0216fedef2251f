package kubernetes

import (
	"context"
	"time"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DefaultEventLimit is the default maximum number of events returned by a
// cluster-wide event listing.
const DefaultEventLimit = 50

// EventsList lists events in the given namespace, or across all namespaces
// when namespace is empty, newest first, truncated to limit (<=0 falls back
// to DefaultEventLimit).
func (c *Core) EventsList(ctx context.Context, namespace string, limit int) ([]EventSummary, error) {
	events, err := c.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	sortEventsNewestFirst(events.Items)
	summaries := make([]EventSummary, 0, limit)
	for i, event := range events.Items {
		if i >= limit {
			break
		}
		summaries = append(summaries, EventSummary{
			Namespace:      event.Namespace,
			Type:           event.Type,
			Reason:         event.Reason,
			Message:        event.Message,
			Count:          event.Count,
			InvolvedObject: involvedObject(&event),
			LastSeen:       formatTimestamp(metav1.Time{Time: eventLastSeen(&event)}),
		})
	}
	return summaries, nil
}

// eventLastSeen returns the most recent observation instant of an event,
// falling back from lastTimestamp to eventTime to the creation timestamp.
func eventLastSeen(event *v1.Event) time.Time {
	if !event.LastTimestamp.IsZero() {
		return event.LastTimestamp.Time
	}
	if !event.EventTime.IsZero() {
		return event.EventTime.Time
	}
	return event.CreationTimestamp.Time
}

func involvedObject(event *v1.Event) string {
	if event.InvolvedObject.Kind == "" && event.InvolvedObject.Name == "" {
		return "Unknown"
	}
	return event.InvolvedObject.Kind + "/" + event.InvolvedObject.Name
}
