package kubernetes

// The types in this file are the output contract of the normalization layer:
// flat, fully-populated records derived from the raw cluster API objects.
// Optional raw fields collapse to documented fallbacks ("Unknown", 0, empty)
// so that consumers never have to handle absent values.

type ClusterInfo struct {
	ServerVersion  string `json:"serverVersion"`
	Platform       string `json:"platform"`
	NodeCount      int    `json:"nodeCount"`
	NamespaceCount int    `json:"namespaceCount"`
	PodCount       int    `json:"podCount"`
}

type NamespaceSummary struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Age    string `json:"age"`
}

type PodSummary struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	// Ready is the ready/total container ratio, e.g. "1/2".
	Ready string `json:"ready"`
	// Restarts is the restart count summed across all containers.
	Restarts int32  `json:"restarts"`
	Age      string `json:"age"`
	Node     string `json:"node"`
}

type PodDetail struct {
	PodSummary
	IP         string            `json:"ip"`
	Containers []ContainerStatus `json:"containers"`
	Conditions []Condition       `json:"conditions"`
	// Events holds the 10 most recent events involving the pod, newest first.
	Events []PodEvent `json:"events"`
}

type ContainerStatus struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Ready    bool   `json:"ready"`
	Restarts int32  `json:"restarts"`
	// State is one of "running", "waiting", "terminated" or "unknown".
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

type Condition struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

type PodEvent struct {
	Type     string `json:"type"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Count    int32  `json:"count"`
	LastSeen string `json:"lastSeen"`
}

type PodProblem struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Restarts  int32  `json:"restarts"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}

type DeploymentSummary struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	// Ready is the ready/desired replica ratio, e.g. "2/3".
	Ready     string `json:"ready"`
	UpToDate  int32  `json:"upToDate"`
	Available int32  `json:"available"`
	Age       string `json:"age"`
}

type DeploymentDetail struct {
	DeploymentSummary
	Images      []string          `json:"images"`
	Replicas    int32             `json:"replicas"`
	Strategy    string            `json:"strategy"`
	Conditions  []Condition       `json:"conditions"`
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
}

type ServiceSummary struct {
	Namespace  string `json:"namespace"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	ClusterIP  string `json:"clusterIP"`
	ExternalIP string `json:"externalIP,omitempty"`
	// Ports is the comma-joined "port/protocol" list, e.g. "80/TCP,443/TCP".
	Ports string `json:"ports"`
	Age   string `json:"age"`
}

type NodeSummary struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	// Roles is derived from the node-role.kubernetes.io/ label suffixes,
	// comma-joined; "worker" when no role label is present.
	Roles   string `json:"roles"`
	Version string `json:"version"`
	OS      string `json:"os"`
	Age     string `json:"age"`
}

type NodeDetail struct {
	NodeSummary
	CPU         string            `json:"cpu"`
	Memory      string            `json:"memory"`
	Taints      []string          `json:"taints"`
	Conditions  []Condition       `json:"conditions"`
	Allocatable map[string]string `json:"allocatable"`
	Capacity    map[string]string `json:"capacity"`
	Addresses   map[string]string `json:"addresses"`
}

type EventSummary struct {
	Namespace      string `json:"namespace"`
	Type           string `json:"type"`
	Reason         string `json:"reason"`
	Message        string `json:"message"`
	Count          int32  `json:"count"`
	InvolvedObject string `json:"involvedObject"`
	LastSeen       string `json:"lastSeen"`
}

type PVCSummary struct {
	Namespace    string `json:"namespace"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Volume       string `json:"volume"`
	Capacity     string `json:"capacity"`
	AccessModes  string `json:"accessModes"`
	StorageClass string `json:"storageClass"`
	Age          string `json:"age"`
}

type CronJobSummary struct {
	Namespace    string `json:"namespace"`
	Name         string `json:"name"`
	Schedule     string `json:"schedule"`
	Suspend      bool   `json:"suspend"`
	Active       int    `json:"active"`
	LastSchedule string `json:"lastSchedule"`
	Age          string `json:"age"`
}

type JobSummary struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	// Completions is the succeeded/desired completion ratio, e.g. "1/1".
	Completions string `json:"completions"`
	// Status is one of "Complete", "Failed" or "Running".
	Status string `json:"status"`
	// DurationSeconds is completion minus start time; 0 while running.
	DurationSeconds int64  `json:"durationSeconds"`
	Age             string `json:"age"`
}

type IngressRouteSummary struct {
	Namespace   string             `json:"namespace"`
	Name        string             `json:"name"`
	EntryPoints []string           `json:"entryPoints"`
	Rules       []IngressRouteRule `json:"rules"`
	Age         string             `json:"age"`
}

type IngressRouteRule struct {
	Match string `json:"match"`
	// Services are the "name:port" targets of the rule.
	Services []string `json:"services"`
}

type ArgoCDAppSummary struct {
	Namespace    string `json:"namespace"`
	Name         string `json:"name"`
	SyncStatus   string `json:"syncStatus"`
	HealthStatus string `json:"healthStatus"`
	Repo         string `json:"repo"`
	Path         string `json:"path"`
	Revision     string `json:"revision"`
	Age          string `json:"age"`
}

type ArgoCDAppDetail struct {
	ArgoCDAppSummary
	Conditions []Condition            `json:"conditions"`
	Resources  []ArgoCDResourceHealth `json:"resources"`
	// History holds the 10 most recent deployments, newest first.
	History []ArgoCDDeployHistory `json:"history"`
}

type ArgoCDResourceHealth struct {
	Kind      string `json:"kind"`
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Health    string `json:"health"`
}

type ArgoCDDeployHistory struct {
	ID         int64  `json:"id"`
	Revision   string `json:"revision"`
	DeployedAt string `json:"deployedAt"`
}

type ScaledObjectSummary struct {
	Namespace   string `json:"namespace"`
	Name        string `json:"name"`
	ScaleTarget string `json:"scaleTarget"`
	MinReplicas int64  `json:"minReplicas"`
	MaxReplicas int64  `json:"maxReplicas"`
	// Triggers is the comma-joined list of trigger types, e.g. "cron,prometheus".
	Triggers string `json:"triggers"`
	Ready    string `json:"ready"`
	Active   string `json:"active"`
	Age      string `json:"age"`
}

type LonghornVolumeSummary struct {
	Name       string `json:"name"`
	State      string `json:"state"`
	Robustness string `json:"robustness"`
	AccessMode string `json:"accessMode"`
	Size       string `json:"size"`
	Replicas   int64  `json:"replicas"`
	// Namespace and Claim identify the PVC the volume is bound to.
	Namespace string `json:"namespace"`
	Claim     string `json:"claim"`
	Age       string `json:"age"`
}
