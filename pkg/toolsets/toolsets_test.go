package toolsets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/argocd"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/core"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/keda"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/longhorn"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/traefik"
)

func TestToolsetNames(t *testing.T) {
	assert.Equal(t, []string{"argocd", "core", "keda", "longhorn", "traefik"}, toolsets.ToolsetNames())
}

func TestToolsetFromString(t *testing.T) {
	require.NotNil(t, toolsets.ToolsetFromString("core"))
	assert.Equal(t, "core", toolsets.ToolsetFromString(" core ").GetName())
	assert.Nil(t, toolsets.ToolsetFromString("missing"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, toolsets.Validate([]string{"core", "argocd"}))
	err := toolsets.Validate([]string{"core", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid toolset name: bogus")
}
