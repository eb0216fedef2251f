package kubernetes

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ClusterInfo gathers the point-in-time cluster summary. The four underlying
// reads are independent, so they are issued concurrently and joined; any
// single failure fails the whole operation.
func (c *Core) ClusterInfo(ctx context.Context) (*ClusterInfo, error) {
	var (
		gitVersion string
		nodes      *v1.NodeList
		namespaces *v1.NamespaceList
		pods       *v1.PodList
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		serverVersion, err := c.DiscoveryClient().ServerVersion()
		if err != nil {
			return err
		}
		gitVersion = serverVersion.GitVersion
		return nil
	})
	g.Go(func() error {
		var err error
		nodes, err = c.CoreV1().Nodes().List(gctx, metav1.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		namespaces, err = c.CoreV1().Namespaces().List(gctx, metav1.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		pods, err = c.CoreV1().Pods("").List(gctx, metav1.ListOptions{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ClusterInfo{
		ServerVersion:  gitVersion,
		Platform:       platformFromVersion(gitVersion),
		NodeCount:      len(nodes.Items),
		NamespaceCount: len(namespaces.Items),
		PodCount:       len(pods.Items),
	}, nil
}

// platformFromVersion derives the distribution from the server version string,
// e.g. "v1.31.4+k3s1" is a k3s cluster.
func platformFromVersion(gitVersion string) string {
	version := strings.ToLower(gitVersion)
	switch {
	case strings.Contains(version, "k3s"):
		return "k3s"
	case strings.Contains(version, "rke2"):
		return "rke2"
	case strings.Contains(version, "gke"):
		return "gke"
	case strings.Contains(version, "eks"):
		return "eks"
	case strings.Contains(version, "aks"):
		return "aks"
	}
	return "kubernetes"
}
