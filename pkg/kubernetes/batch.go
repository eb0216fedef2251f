package kubernetes

import (
	"context"

	batchv1 "k8s.io/api/batch/v1"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// CronJobsList lists cron jobs in the given namespace, or across all
// namespaces when namespace is empty.
func (c *Core) CronJobsList(ctx context.Context, namespace string) ([]CronJobSummary, error) {
	cronJobs, err := c.BatchV1().CronJobs(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]CronJobSummary, 0, len(cronJobs.Items))
	for _, cronJob := range cronJobs.Items {
		suspend := false
		if cronJob.Spec.Suspend != nil {
			suspend = *cronJob.Spec.Suspend
		}
		lastSchedule := "unknown"
		if cronJob.Status.LastScheduleTime != nil {
			lastSchedule = FormatAge(*cronJob.Status.LastScheduleTime)
		}
		summaries = append(summaries, CronJobSummary{
			Namespace:    cronJob.Namespace,
			Name:         cronJob.Name,
			Schedule:     cronJob.Spec.Schedule,
			Suspend:      suspend,
			Active:       len(cronJob.Status.Active),
			LastSchedule: lastSchedule,
			Age:          FormatAge(cronJob.CreationTimestamp),
		})
	}
	return summaries, nil
}

// JobsList lists jobs in the given namespace, or across all namespaces when
// namespace is empty.
func (c *Core) JobsList(ctx context.Context, namespace string) ([]JobSummary, error) {
	jobs, err := c.BatchV1().Jobs(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries := make([]JobSummary, 0, len(jobs.Items))
	for _, job := range jobs.Items {
		completions := int32(1)
		if job.Spec.Completions != nil {
			completions = *job.Spec.Completions
		}
		summaries = append(summaries, JobSummary{
			Namespace:       job.Namespace,
			Name:            job.Name,
			Completions:     formatRatio(int(job.Status.Succeeded), int(completions)),
			Status:          jobStatus(&job),
			DurationSeconds: jobDurationSeconds(&job),
			Age:             FormatAge(job.CreationTimestamp),
		})
	}
	return summaries, nil
}

// jobStatus derives the job state from its Complete/Failed conditions;
// anything else is still Running.
func jobStatus(job *batchv1.Job) string {
	for _, condition := range job.Status.Conditions {
		if condition.Status != v1.ConditionTrue {
			continue
		}
		switch condition.Type {
		case batchv1.JobComplete:
			return "Complete"
		case batchv1.JobFailed:
			return "Failed"
		}
	}
	return "Running"
}

// jobDurationSeconds computes completion minus start; 0 while either endpoint
// is missing.
func jobDurationSeconds(job *batchv1.Job) int64 {
	if job.Status.StartTime == nil || job.Status.CompletionTime == nil {
		return 0
	}
	return int64(job.Status.CompletionTime.Sub(job.Status.StartTime.Time).Seconds())
}
