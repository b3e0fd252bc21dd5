package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// CapabilityType represents the kind of access right a capability conveys.
type CapabilityType string

const (
	// ReadCapabilityType allows reading a resource's state.
	ReadCapabilityType CapabilityType = "read"
	// WriteCapabilityType allows mutating a resource's state.
	WriteCapabilityType CapabilityType = "write"
	// ExecuteCapabilityType allows invoking a resource's behavior.
	ExecuteCapabilityType CapabilityType = "execute"
)

// AllCapabilityTypes returns the complete capability type set in
// declaration order. The returned slice is a fresh copy.
func AllCapabilityTypes() []CapabilityType {
	return []CapabilityType{
		ReadCapabilityType,
		WriteCapabilityType,
		ExecuteCapabilityType,
	}
}

// String returns the tag value of the capability type.
func (t CapabilityType) String() string {
	return string(t)
}

// IsValid reports whether t is a member of the capability type set.
func (t CapabilityType) IsValid() bool {
	switch t {
	case ReadCapabilityType, WriteCapabilityType, ExecuteCapabilityType:
		return true
	}
	return false
}

// ParseCapabilityType converts a raw tag into a CapabilityType. Tags outside
// the set return an error wrapping ErrUnknownCapabilityType.
func ParseCapabilityType(s string) (CapabilityType, error) {
	t := CapabilityType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCapabilityType, s)
	}
	return t, nil
}

// UnmarshalJSON decodes a capability type tag, rejecting values outside the set.
func (t *CapabilityType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCapabilityType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML decodes a capability type tag, rejecting values outside the set.
func (t *CapabilityType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCapabilityType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Capability is a grant record tying an access right to a node in the
// reality-graph. It carries no negotiation state; it only describes what
// was granted and for how long.
type Capability struct {
	Uuid      string         `json:"uuid" yaml:"uuid" mapstructure:"uuid"`
	Type      CapabilityType `json:"type" yaml:"type" mapstructure:"type"`
	NodeUuid  string         `json:"node_uuid" yaml:"node_uuid" mapstructure:"node_uuid"`
	GroupID   string         `json:"group_id" yaml:"group_id" mapstructure:"group_id"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at" mapstructure:"created_at"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty" yaml:"expires_at,omitempty" mapstructure:"expires_at"`

	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty" mapstructure:"metadata"`
}

// NewCapability creates a Capability of the given type for a node, with a
// fresh UUID and a UTC creation timestamp.
func NewCapability(capType CapabilityType, nodeUuid, groupID string) (*Capability, error) {
	if !capType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCapabilityType, capType)
	}
	return &Capability{
		Uuid:      uuid.NewString(),
		Type:      capType,
		NodeUuid:  nodeUuid,
		GroupID:   groupID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Validate checks if the Capability has all required fields set.
func (c *Capability) Validate() error {
	if c.NodeUuid == "" {
		return ErrEmptyNodeUUID
	}
	if c.GroupID == "" {
		return ErrEmptyGroupID
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCapabilityType, c.Type)
	}
	return nil
}

// ValidateForCreate checks if the Capability has all required fields for creation.
func (c *Capability) ValidateForCreate() error {
	if c.Uuid == "" {
		return ErrEmptyUUID
	}
	return c.Validate()
}

// Expired reports whether the capability has lapsed as of the given time.
// Capabilities without an expiry never expire.
func (c *Capability) Expired(at time.Time) bool {
	return c.ExpiresAt != nil && !at.Before(*c.ExpiresAt)
}
