package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func testPod(namespace, name string) *v1.Pod {
	return &v1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         namespace,
			Name:              name,
			CreationTimestamp: metav1.Now(),
		},
		Spec: v1.PodSpec{
			Containers: []v1.Container{{Name: "app", Image: "app:latest"}},
		},
		Status: v1.PodStatus{
			Phase: v1.PodRunning,
			ContainerStatuses: []v1.ContainerStatus{{
				Name:  "app",
				Ready: true,
				State: v1.ContainerState{Running: &v1.ContainerStateRunning{}},
			}},
		},
	}
}

func TestPodsListTool(t *testing.T) {
	t.Run("empty cluster", func(t *testing.T) {
		params, _ := newHandlerParams(nil)
		result, err := podsList(params)
		require.NoError(t, err)
		require.NoError(t, result.Error)
		assert.Equal(t, "No pods found", result.Content)
	})
	t.Run("pods found", func(t *testing.T) {
		params, _ := newHandlerParams(nil, testPod("default", "web"))
		result, err := podsList(params)
		require.NoError(t, err)
		require.NoError(t, result.Error)
		var pods []map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Content), &pods))
		require.Len(t, pods, 1)
		assert.Equal(t, "web", pods[0]["name"])
		assert.Equal(t, "1/1", pods[0]["ready"])
	})
}

func TestPodsGetTool(t *testing.T) {
	t.Run("missing namespace argument", func(t *testing.T) {
		params, _ := newHandlerParams(map[string]any{"name": "web"})
		result, err := podsGet(params)
		require.NoError(t, err)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "namespace parameter required")
	})
	t.Run("missing pod surfaces error result", func(t *testing.T) {
		params, _ := newHandlerParams(map[string]any{"namespace": "default", "name": "missing"})
		result, err := podsGet(params)
		require.NoError(t, err)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "failed to get pod")
	})
	t.Run("found", func(t *testing.T) {
		params, _ := newHandlerParams(map[string]any{"namespace": "default", "name": "web"}, testPod("default", "web"))
		result, err := podsGet(params)
		require.NoError(t, err)
		require.NoError(t, result.Error)
		var detail map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Content), &detail))
		assert.Equal(t, "web", detail["name"])
	})
}

func TestPodsProblemsTool(t *testing.T) {
	pod := testPod("default", "crashy")
	pod.Status.ContainerStatuses[0].Ready = false
	pod.Status.ContainerStatuses[0].State = v1.ContainerState{
		Waiting: &v1.ContainerStateWaiting{Reason: "CrashLoopBackOff", Message: "back-off 5m"},
	}
	params, _ := newHandlerParams(nil, testPod("default", "web"), pod)

	result, err := podsProblems(params)
	require.NoError(t, err)
	require.NoError(t, result.Error)
	var problems []map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content), &problems))
	require.Len(t, problems, 1)
	assert.Equal(t, "crashy", problems[0]["name"])
	assert.Equal(t, "CrashLoopBackOff", problems[0]["reason"])
}

func TestPodsLogsTool(t *testing.T) {
	t.Run("missing name argument", func(t *testing.T) {
		params, _ := newHandlerParams(map[string]any{"namespace": "default"})
		result, err := podsLogs(params)
		require.NoError(t, err)
		require.Error(t, result.Error)
	})
	t.Run("returns logs payload", func(t *testing.T) {
		params, _ := newHandlerParams(map[string]any{"namespace": "default", "name": "web"}, testPod("default", "web"))
		result, err := podsLogs(params)
		require.NoError(t, err)
		require.NoError(t, result.Error)
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
		assert.Contains(t, payload, "logs")
	})
}
