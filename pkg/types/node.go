package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// NodeType represents the category of a node in the reality-graph.
type NodeType string

const (
	// PhysicalObjectNodeType represents tangible objects in the physical domain.
	PhysicalObjectNodeType NodeType = "physical_object"
	// DataPacketNodeType represents units of data moving through the digital domain.
	DataPacketNodeType NodeType = "data_packet"
	// TransportVehicleNodeType represents vehicles that carry physical objects.
	TransportVehicleNodeType NodeType = "transport_vehicle"
	// ComputeNodeType represents computational resources.
	ComputeNodeType NodeType = "compute_node"
	// StorageNodeType represents storage resources.
	StorageNodeType NodeType = "storage_node"
)

// AllNodeTypes returns the complete node type set in declaration order.
// The returned slice is a fresh copy; the set itself is closed and cannot
// be extended at runtime.
func AllNodeTypes() []NodeType {
	return []NodeType{
		PhysicalObjectNodeType,
		DataPacketNodeType,
		TransportVehicleNodeType,
		ComputeNodeType,
		StorageNodeType,
	}
}

// String returns the tag value of the node type.
func (t NodeType) String() string {
	return string(t)
}

// IsValid reports whether t is a member of the node type set.
func (t NodeType) IsValid() bool {
	switch t {
	case PhysicalObjectNodeType, DataPacketNodeType, TransportVehicleNodeType,
		ComputeNodeType, StorageNodeType:
		return true
	}
	return false
}

// ParseNodeType converts a raw tag into a NodeType. Tags outside the set
// return an error wrapping ErrUnknownNodeType.
func ParseNodeType(s string) (NodeType, error) {
	t := NodeType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownNodeType, s)
	}
	return t, nil
}

// UnmarshalJSON decodes a node type tag, rejecting values outside the set.
func (t *NodeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseNodeType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML decodes a node type tag, rejecting values outside the set.
func (t *NodeType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseNodeType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Node represents a single entity in the reality-graph.
type Node struct {
	Uuid      string    `json:"uuid" yaml:"uuid" mapstructure:"uuid"`
	Name      string    `json:"name" yaml:"name" mapstructure:"name"`
	Type      NodeType  `json:"type" yaml:"type" mapstructure:"type"`
	GroupID   string    `json:"group_id" yaml:"group_id" mapstructure:"group_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at" mapstructure:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at" mapstructure:"updated_at"`

	Metadata map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty" mapstructure:"metadata"`
}

// NewNode creates a Node of the given type with a fresh UUID and UTC
// creation timestamps.
func NewNode(name string, nodeType NodeType, groupID string) (*Node, error) {
	if !nodeType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, nodeType)
	}
	now := time.Now().UTC()
	return &Node{
		Uuid:      uuid.NewString(),
		Name:      name,
		Type:      nodeType,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks if the Node has all required fields set.
func (n *Node) Validate() error {
	if n.Name == "" {
		return ErrEmptyName
	}
	if n.GroupID == "" {
		return ErrEmptyGroupID
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownNodeType, n.Type)
	}
	return nil
}

// ValidateForCreate checks if the Node has all required fields for creation.
func (n *Node) ValidateForCreate() error {
	if n.Uuid == "" {
		return ErrEmptyUUID
	}
	return n.Validate()
}
