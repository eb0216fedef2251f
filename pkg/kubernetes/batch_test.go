package kubernetes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"
)

func TestJobStatus(t *testing.T) {
	tests := []struct {
		name       string
		conditions []batchv1.JobCondition
		expected   string
	}{
		{"no conditions is running", nil, "Running"},
		{
			"complete",
			[]batchv1.JobCondition{{Type: batchv1.JobComplete, Status: v1.ConditionTrue}},
			"Complete",
		},
		{
			"failed",
			[]batchv1.JobCondition{{Type: batchv1.JobFailed, Status: v1.ConditionTrue}},
			"Failed",
		},
		{
			"false conditions are ignored",
			[]batchv1.JobCondition{{Type: batchv1.JobComplete, Status: v1.ConditionFalse}},
			"Running",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &batchv1.Job{Status: batchv1.JobStatus{Conditions: tt.conditions}}
			assert.Equal(t, tt.expected, jobStatus(job))
		})
	}
}

func TestJobDurationSeconds(t *testing.T) {
	start := metav1.NewTime(time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))
	completion := metav1.NewTime(start.Add(90 * time.Second))
	t.Run("running job has zero duration", func(t *testing.T) {
		job := &batchv1.Job{Status: batchv1.JobStatus{StartTime: &start}}
		assert.Equal(t, int64(0), jobDurationSeconds(job))
	})
	t.Run("finished job", func(t *testing.T) {
		job := &batchv1.Job{Status: batchv1.JobStatus{StartTime: &start, CompletionTime: &completion}}
		assert.Equal(t, int64(90), jobDurationSeconds(job))
	})
}

func TestJobsList(t *testing.T) {
	start := metav1.NewTime(time.Now().Add(-10 * time.Minute))
	completion := metav1.NewTime(start.Add(2 * time.Minute))
	job := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         "default",
			Name:              "backup",
			CreationTimestamp: start,
		},
		Spec: batchv1.JobSpec{Completions: ptr.To(int32(1))},
		Status: batchv1.JobStatus{
			Succeeded:      1,
			StartTime:      &start,
			CompletionTime: &completion,
			Conditions:     []batchv1.JobCondition{{Type: batchv1.JobComplete, Status: v1.ConditionTrue}},
		},
	}
	core, _, _ := newFakeCore([]runtime.Object{job})

	jobs, err := core.JobsList(context.Background(), "default")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "1/1", jobs[0].Completions)
	assert.Equal(t, "Complete", jobs[0].Status)
	assert.Equal(t, int64(120), jobs[0].DurationSeconds)
}

func TestCronJobsList(t *testing.T) {
	lastSchedule := metav1.NewTime(time.Now().Add(-30 * time.Minute))
	cronJob := &batchv1.CronJob{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         "default",
			Name:              "nightly",
			CreationTimestamp: metav1.NewTime(time.Now().Add(-48 * time.Hour)),
		},
		Spec: batchv1.CronJobSpec{
			Schedule: "0 2 * * *",
			Suspend:  ptr.To(true),
		},
		Status: batchv1.CronJobStatus{
			Active:           []v1.ObjectReference{{Name: "nightly-1"}},
			LastScheduleTime: &lastSchedule,
		},
	}
	core, _, _ := newFakeCore([]runtime.Object{cronJob})

	cronJobs, err := core.CronJobsList(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, cronJobs, 1)
	assert.Equal(t, "0 2 * * *", cronJobs[0].Schedule)
	assert.True(t, cronJobs[0].Suspend)
	assert.Equal(t, 1, cronJobs[0].Active)
	assert.Equal(t, "30m", cronJobs[0].LastSchedule)
}
