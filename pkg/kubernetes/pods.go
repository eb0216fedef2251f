package kubernetes

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// DefaultTailLines is the default number of lines to retrieve from the end of the logs
const DefaultTailLines = int64(100)

// podHighRestartThreshold is the number of container restarts above which a pod
// is flagged as a problem, even if it's currently running without errors.
const podHighRestartThreshold = 5

// podDetailEventLimit caps the events attached to a pod detail view.
const podDetailEventLimit = 10

// PodsList lists pods in the given namespace, or across all namespaces when
// namespace is empty. The scope selects the underlying call; results are
// never filtered client-side.
func (c *Core) PodsList(ctx context.Context, namespace string) ([]PodSummary, error) {
	pods, err := c.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]PodSummary, 0, len(pods.Items))
	for _, pod := range pods.Items {
		summaries = append(summaries, summarizePod(&pod))
	}
	return summaries, nil
}

// PodGet returns the detail view of a single pod: the pod itself plus its
// 10 most recent events, fetched concurrently and merged.
func (c *Core) PodGet(ctx context.Context, namespace, name string) (*PodDetail, error) {
	namespace = c.NamespaceOrDefault(namespace)
	var (
		pod    *v1.Pod
		events *v1.EventList
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pod, err = c.CoreV1().Pods(namespace).Get(gctx, name, metav1.GetOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		events, err = c.CoreV1().Events(namespace).List(gctx, metav1.ListOptions{
			FieldSelector: "involvedObject.name=" + name,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &PodDetail{
		PodSummary: summarizePod(pod),
		IP:         pod.Status.PodIP,
		Containers: make([]ContainerStatus, 0, len(pod.Status.ContainerStatuses)),
		Conditions: conditionsFromPod(pod.Status.Conditions),
		Events:     make([]PodEvent, 0, podDetailEventLimit),
	}
	for _, cs := range pod.Status.ContainerStatuses {
		state, reason := containerState(cs)
		detail.Containers = append(detail.Containers, ContainerStatus{
			Name:     cs.Name,
			Image:    cs.Image,
			Ready:    cs.Ready,
			Restarts: cs.RestartCount,
			State:    state,
			Reason:   reason,
		})
	}
	sortEventsNewestFirst(events.Items)
	for i, event := range events.Items {
		if i >= podDetailEventLimit {
			break
		}
		detail.Events = append(detail.Events, PodEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			Message:  event.Message,
			Count:    event.Count,
			LastSeen: formatTimestamp(metav1.Time{Time: eventLastSeen(&event)}),
		})
	}
	return detail, nil
}

// PodLogs retrieves the logs of a container in a pod.
// tailLines <= 0 falls back to DefaultTailLines.
func (c *Core) PodLogs(ctx context.Context, namespace, name, container string, tailLines, sinceSeconds int64, previous bool) (string, error) {
	logOptions := &v1.PodLogOptions{
		Container: container,
		Previous:  previous,
	}
	if tailLines > 0 {
		logOptions.TailLines = &tailLines
	} else {
		logOptions.TailLines = ptr.To(DefaultTailLines)
	}
	if sinceSeconds > 0 {
		logOptions.SinceSeconds = &sinceSeconds
	}
	req := c.CoreV1().Pods(c.NamespaceOrDefault(namespace)).GetLogs(name, logOptions)
	res := req.Do(ctx)
	if res.Error() != nil {
		return "", res.Error()
	}
	rawData, err := res.Raw()
	if err != nil {
		return "", err
	}
	return string(rawData), nil
}

// PodProblems lists the pods classified as unhealthy in the given namespace,
// or across all namespaces when namespace is empty.
func (c *Core) PodProblems(ctx context.Context, namespace string) ([]PodProblem, error) {
	pods, err := c.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	problems := make([]PodProblem, 0)
	for _, pod := range pods.Items {
		if problem, reason, message := classifyPodProblem(&pod); problem {
			problems = append(problems, PodProblem{
				Namespace: pod.Namespace,
				Name:      pod.Name,
				Status:    podStatus(&pod),
				Restarts:  sumRestarts(pod.Status.ContainerStatuses),
				Reason:    reason,
				Message:   message,
			})
		}
	}
	return problems, nil
}

// classifyPodProblem implements the pod health policy: a pod is a problem iff
// its phase is Failed, Pending or Unknown, or, while Running/Succeeded, any
// container exceeds podHighRestartThreshold restarts, or any container is not
// ready while the pod phase is Running.
func classifyPodProblem(pod *v1.Pod) (problem bool, reason, message string) {
	phase := pod.Status.Phase
	if phase == v1.PodFailed || phase == v1.PodPending || phase == v1.PodUnknown {
		reason, message = podFailureDetail(pod)
		return true, reason, message
	}
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.RestartCount > podHighRestartThreshold {
			return true, "HighRestartCount", containerStateMessage(cs)
		}
	}
	if phase == v1.PodRunning {
		for _, cs := range pod.Status.ContainerStatuses {
			if !cs.Ready {
				_, stateReason := containerState(cs)
				if stateReason == "" {
					stateReason = "ContainerNotReady"
				}
				return true, stateReason, containerStateMessage(cs)
			}
		}
	}
	return false, "", ""
}

// podFailureDetail extracts the most specific reason/message available for a
// pod in a non-running phase, preferring container state detail over the
// pod-level status fields.
func podFailureDetail(pod *v1.Pod) (reason, message string) {
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			return cs.State.Waiting.Reason, cs.State.Waiting.Message
		}
		if cs.State.Terminated != nil && cs.State.Terminated.Reason != "" {
			return cs.State.Terminated.Reason, cs.State.Terminated.Message
		}
	}
	return pod.Status.Reason, pod.Status.Message
}

func containerStateMessage(cs v1.ContainerStatus) string {
	if cs.State.Waiting != nil {
		return cs.State.Waiting.Message
	}
	if cs.State.Terminated != nil {
		return cs.State.Terminated.Message
	}
	return ""
}

func summarizePod(pod *v1.Pod) PodSummary {
	readyCount := 0
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			readyCount++
		}
	}
	return PodSummary{
		Namespace: pod.Namespace,
		Name:      pod.Name,
		Status:    podStatus(pod),
		Ready:     formatRatio(readyCount, len(pod.Spec.Containers)),
		Restarts:  sumRestarts(pod.Status.ContainerStatuses),
		Age:       FormatAge(pod.CreationTimestamp),
		Node:      pod.Spec.NodeName,
	}
}

func podStatus(pod *v1.Pod) string {
	if pod.Status.Phase == "" {
		return "Unknown"
	}
	return string(pod.Status.Phase)
}

// sortEventsNewestFirst orders events by last observation descending.
func sortEventsNewestFirst(events []v1.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return eventLastSeen(&events[i]).After(eventLastSeen(&events[j]))
	})
}
