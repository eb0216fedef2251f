package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
	clienttesting "k8s.io/client-go/testing"
)

func TestHealthHealthy(t *testing.T) {
	params, _ := newHandlerParams(nil)

	result, err := health(params)
	require.NoError(t, err)
	require.NoError(t, result.Error)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content), &report))
	assert.Equal(t, "healthy", report["status"])
	assert.GreaterOrEqual(t, report["latencyMs"].(float64), float64(0))
	assert.NotContains(t, report, "details")
}

func TestHealthUnavailable(t *testing.T) {
	params, clientset := newHandlerParams(nil)
	clientset.PrependReactor("list", "nodes", func(action clienttesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("connection refused")
	})

	result, err := health(params)
	require.NoError(t, err)
	require.NoError(t, result.Error)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content), &report))
	assert.Equal(t, "unavailable", report["status"])
	assert.Contains(t, report["details"], "connection refused")
}

func TestClusterInfoTool(t *testing.T) {
	params, _ := newHandlerParams(nil)

	result, err := clusterInfo(params)
	require.NoError(t, err)
	require.NoError(t, result.Error)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content), &info))
	assert.Contains(t, info, "platform")
	assert.Contains(t, info, "nodeCount")
}
