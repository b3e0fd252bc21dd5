package realitygraph

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderTags(t *testing.T) {
	tags := []string{"physical_object", "data_packet"}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderTags(&buf, "table", tags))
		assert.Equal(t, "physical_object\ndata_packet\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderTags(&buf, "json", tags))

		var decoded []string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, tags, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderTags(&buf, "yaml", tags))

		var decoded []string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, tags, decoded)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, renderTags(&buf, "xml", tags))
	})
}

func TestTagParser(t *testing.T) {
	parse, err := tagParser("node")
	require.NoError(t, err)

	got, err := parse("storage_node")
	require.NoError(t, err)
	assert.Equal(t, "storage_node", got.String())

	_, err = parse("blackhole")
	assert.Error(t, err)

	parse, err = tagParser("capabilities")
	require.NoError(t, err)
	got, err = parse("execute")
	require.NoError(t, err)
	assert.Equal(t, "execute", got.String())

	_, err = tagParser("edges")
	assert.Error(t, err)
}
