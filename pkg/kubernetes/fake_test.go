package kubernetes

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
)

// fakeClient implements api.KubernetesClient on top of the fake clientset and
// fake dynamic client.
type fakeClient struct {
	kubernetes.Interface
	dynamic   dynamic.Interface
	namespace string
}

func (f *fakeClient) NamespaceOrDefault(namespace string) string {
	if namespace != "" {
		return namespace
	}
	if f.namespace != "" {
		return f.namespace
	}
	return "default"
}

func (f *fakeClient) DiscoveryClient() discovery.DiscoveryInterface {
	return f.Discovery()
}

func (f *fakeClient) DynamicClient() dynamic.Interface {
	return f.dynamic
}

func customResourceListKinds() map[schema.GroupVersionResource]string {
	return map[schema.GroupVersionResource]string{
		ingressRouteGvr:   "IngressRouteList",
		argoCDAppGvr:      "ApplicationList",
		scaledObjectGvr:   "ScaledObjectList",
		longhornVolumeGvr: "VolumeList",
	}
}

// newFakeCore builds a Core over fake clients seeded with the given typed and
// unstructured objects.
func newFakeCore(objects []runtime.Object, customObjects ...runtime.Object) (*Core, *fake.Clientset, *dynamicfake.FakeDynamicClient) {
	clientset := fake.NewSimpleClientset(objects...)
	dynClient := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), customResourceListKinds(), customObjects...)
	client := &fakeClient{Interface: clientset, dynamic: dynClient}
	return NewCore(client), clientset, dynClient
}
