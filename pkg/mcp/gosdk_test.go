package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestGoSdkToolCallParamsToToolCallRequest(t *testing.T) {
	t.Run("arguments decoded", func(t *testing.T) {
		request, err := GoSdkToolCallParamsToToolCallRequest(&sdk.CallToolParamsRaw{
			Name:      "list_pods",
			Arguments: json.RawMessage(`{"namespace":"team-a","limit":25}`),
		})
		require.NoError(t, err)
		assert.Equal(t, "list_pods", request.Name)
		assert.Equal(t, "team-a", request.GetArguments()["namespace"])
		assert.Equal(t, float64(25), request.GetArguments()["limit"])
	})
	t.Run("empty arguments", func(t *testing.T) {
		request, err := GoSdkToolCallParamsToToolCallRequest(&sdk.CallToolParamsRaw{Name: "health"})
		require.NoError(t, err)
		assert.Empty(t, request.GetArguments())
	})
	t.Run("malformed arguments", func(t *testing.T) {
		_, err := GoSdkToolCallParamsToToolCallRequest(&sdk.CallToolParamsRaw{
			Name:      "list_pods",
			Arguments: json.RawMessage(`{`),
		})
		assert.Error(t, err)
	})
}
