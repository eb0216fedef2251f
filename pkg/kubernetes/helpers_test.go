package kubernetes

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"zero instant", time.Time{}, "unknown"},
		{"minutes only", now.Add(-42 * time.Minute), "42m"},
		{"less than a minute", now.Add(-30 * time.Second), "0m"},
		{"hours and minutes", now.Add(-(4*time.Hour + 20*time.Minute)), "4h20m"},
		{"days and hours", now.Add(-(3*24*time.Hour + 4*time.Hour)), "3d4h"},
		{"exactly one day", now.Add(-24 * time.Hour), "1d0h"},
		{"future instant clamps to zero", now.Add(5 * time.Minute), "0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatAge(tt.t, now))
		})
	}
}

func TestFormatAgeShape(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	dayPattern := regexp.MustCompile(`^\d+d\d+h$`)
	hourPattern := regexp.MustCompile(`^\d+h\d+m$`)
	minutePattern := regexp.MustCompile(`^\d+m$`)
	for elapsed := time.Minute; elapsed < 10*24*time.Hour; elapsed += 37 * time.Minute {
		age := formatAge(now.Add(-elapsed), now)
		switch {
		case elapsed >= 24*time.Hour:
			assert.Regexp(t, dayPattern, age)
		case elapsed >= time.Hour:
			assert.Regexp(t, hourPattern, age)
		default:
			assert.Regexp(t, minutePattern, age)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "0/0", formatRatio(0, 0))
	assert.Equal(t, "1/2", formatRatio(1, 2))
	assert.Equal(t, "3/3", formatRatio(3, 3))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "unknown", formatTimestamp(metav1.Time{}))
	instant := metav1.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-20T10:30:00Z", formatTimestamp(instant))
}

func TestContainerState(t *testing.T) {
	tests := []struct {
		name           string
		state          v1.ContainerState
		expectedState  string
		expectedReason string
	}{
		{
			name:          "running",
			state:         v1.ContainerState{Running: &v1.ContainerStateRunning{}},
			expectedState: "running",
		},
		{
			name:           "waiting carries reason",
			state:          v1.ContainerState{Waiting: &v1.ContainerStateWaiting{Reason: "CrashLoopBackOff"}},
			expectedState:  "waiting",
			expectedReason: "CrashLoopBackOff",
		},
		{
			name:           "terminated carries reason",
			state:          v1.ContainerState{Terminated: &v1.ContainerStateTerminated{Reason: "OOMKilled"}},
			expectedState:  "terminated",
			expectedReason: "OOMKilled",
		},
		{
			name:          "empty state is unknown",
			state:         v1.ContainerState{},
			expectedState: "unknown",
		},
		{
			name: "running wins over waiting",
			state: v1.ContainerState{
				Running: &v1.ContainerStateRunning{},
				Waiting: &v1.ContainerStateWaiting{Reason: "ContainerCreating"},
			},
			expectedState: "running",
		},
		{
			name: "waiting wins over terminated",
			state: v1.ContainerState{
				Waiting:    &v1.ContainerStateWaiting{Reason: "ImagePullBackOff"},
				Terminated: &v1.ContainerStateTerminated{Reason: "Error"},
			},
			expectedState:  "waiting",
			expectedReason: "ImagePullBackOff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, reason := containerState(v1.ContainerStatus{State: tt.state})
			assert.Equal(t, tt.expectedState, state)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestSumRestarts(t *testing.T) {
	assert.Equal(t, int32(0), sumRestarts(nil))
	assert.Equal(t, int32(7), sumRestarts([]v1.ContainerStatus{
		{RestartCount: 5},
		{RestartCount: 2},
	}))
}
