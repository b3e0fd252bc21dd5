package types

import "errors"

// Validation errors
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyGroupID  = errors.New("group_id cannot be empty")
	ErrEmptyUUID     = errors.New("uuid cannot be empty")
	ErrEmptyNodeUUID = errors.New("node_uuid cannot be empty")

	ErrUnknownNodeType       = errors.New("unknown node type")
	ErrUnknownCapabilityType = errors.New("unknown capability type")
)
