package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thom899g/autonomous-cross-d/pkg/types"
)

func TestCapabilityTypeValues(t *testing.T) {
	all := types.AllCapabilityTypes()
	require.Len(t, all, 3)

	assert.Equal(t, types.CapabilityType("read"), types.ReadCapabilityType)
	assert.Equal(t, types.CapabilityType("write"), types.WriteCapabilityType)
	assert.Equal(t, types.CapabilityType("execute"), types.ExecuteCapabilityType)

	seen := make(map[types.CapabilityType]bool, len(all))
	for _, ct := range all {
		assert.False(t, seen[ct], "duplicate capability type %q", ct)
		seen[ct] = true
		assert.True(t, ct.IsValid())
	}
}

func TestParseCapabilityType(t *testing.T) {
	got, err := types.ParseCapabilityType("write")
	require.NoError(t, err)
	assert.Equal(t, types.WriteCapabilityType, got)

	_, err = types.ParseCapabilityType("admin")
	assert.ErrorIs(t, err, types.ErrUnknownCapabilityType)

	_, err = types.ParseCapabilityType("exec")
	assert.ErrorIs(t, err, types.ErrUnknownCapabilityType, "abbreviated tag is not a member")
}

func TestCapabilityTypeDecoding(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var ct types.CapabilityType
		require.NoError(t, json.Unmarshal([]byte(`"execute"`), &ct))
		assert.Equal(t, types.ExecuteCapabilityType, ct)

		err := json.Unmarshal([]byte(`"delete"`), &ct)
		assert.ErrorIs(t, err, types.ErrUnknownCapabilityType)
	})

	t.Run("yaml", func(t *testing.T) {
		var ct types.CapabilityType
		require.NoError(t, yaml.Unmarshal([]byte("read"), &ct))
		assert.Equal(t, types.ReadCapabilityType, ct)

		err := yaml.Unmarshal([]byte("delete"), &ct)
		assert.ErrorIs(t, err, types.ErrUnknownCapabilityType)
	})
}

func TestNodeTypeYAMLDecoding(t *testing.T) {
	var nt types.NodeType
	require.NoError(t, yaml.Unmarshal([]byte("data_packet"), &nt))
	assert.Equal(t, types.DataPacketNodeType, nt)

	err := yaml.Unmarshal([]byte("wormhole"), &nt)
	assert.ErrorIs(t, err, types.ErrUnknownNodeType)
}

func TestNewCapability(t *testing.T) {
	grant, err := types.NewCapability(types.ReadCapabilityType, "node-uuid-1", "group-1")
	require.NoError(t, err)

	assert.NotEmpty(t, grant.Uuid)
	assert.Equal(t, types.ReadCapabilityType, grant.Type)
	assert.Equal(t, "node-uuid-1", grant.NodeUuid)
	assert.Equal(t, time.UTC, grant.CreatedAt.Location())
	assert.Nil(t, grant.ExpiresAt)
	assert.NoError(t, grant.ValidateForCreate())

	_, err = types.NewCapability(types.CapabilityType("own"), "node-uuid-1", "group-1")
	assert.ErrorIs(t, err, types.ErrUnknownCapabilityType)
}

func TestCapabilityValidation(t *testing.T) {
	tests := []struct {
		name    string
		grant   types.Capability
		wantErr error
	}{
		{
			name: "valid capability",
			grant: types.Capability{
				Type:     types.WriteCapabilityType,
				NodeUuid: "node-uuid-1",
				GroupID:  "group-1",
			},
		},
		{
			name: "empty node_uuid",
			grant: types.Capability{
				Type:    types.WriteCapabilityType,
				GroupID: "group-1",
			},
			wantErr: types.ErrEmptyNodeUUID,
		},
		{
			name: "empty group_id",
			grant: types.Capability{
				Type:     types.WriteCapabilityType,
				NodeUuid: "node-uuid-1",
			},
			wantErr: types.ErrEmptyGroupID,
		},
		{
			name: "unknown type",
			grant: types.Capability{
				Type:     types.CapabilityType("admin"),
				NodeUuid: "node-uuid-1",
				GroupID:  "group-1",
			},
			wantErr: types.ErrUnknownCapabilityType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grant.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCapabilityExpired(t *testing.T) {
	now := time.Now().UTC()

	grant := types.Capability{
		Type:     types.ReadCapabilityType,
		NodeUuid: "node-uuid-1",
		GroupID:  "group-1",
	}
	assert.False(t, grant.Expired(now), "no expiry never expires")

	expiry := now.Add(time.Hour)
	grant.ExpiresAt = &expiry
	assert.False(t, grant.Expired(now))
	assert.True(t, grant.Expired(expiry), "expiry instant counts as expired")
	assert.True(t, grant.Expired(expiry.Add(time.Minute)))
}

func TestCapabilityJSONRoundTrip(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	grant := types.Capability{
		Uuid:      "grant-uuid-1",
		Type:      types.ExecuteCapabilityType,
		NodeUuid:  "node-uuid-1",
		GroupID:   "group-1",
		CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		ExpiresAt: &expiry,
	}

	data, err := json.Marshal(&grant)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"execute"`)

	var decoded types.Capability
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, grant, decoded)
}
