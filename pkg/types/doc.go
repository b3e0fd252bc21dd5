// Package types defines the core data model for the cross-domain reality-graph.
//
// This package contains the fundamental types used throughout the project:
//   - NodeType: The closed tag set classifying nodes in the reality-graph
//   - Node: A single entity in the reality-graph
//   - CapabilityType: The closed tag set classifying access rights
//   - Capability: A grant record tying an access right to a node
//
// # Node Types
//
// Nodes are classified into five categories spanning the physical and
// digital domains:
//   - PhysicalObjectNodeType: Tangible objects in the physical domain
//   - DataPacketNodeType: Units of data moving through the digital domain
//   - TransportVehicleNodeType: Vehicles that carry physical objects
//   - ComputeNodeType: Computational resources
//   - StorageNodeType: Storage resources
//
// Both tag sets are closed: membership is fixed at compile time, every tag
// is a unique lowercase snake_case string, and decoding rejects tags outside
// the set:
//
//	nodeType, err := types.ParseNodeType("compute_node")
//	if err != nil {
//	    // Tag is not a member of the set
//	}
//
// # Validation
//
// Model types provide Validate() and ValidateForCreate() methods for input
// validation:
//
//	node, _ := types.NewNode("edge-router-1", types.ComputeNodeType, "group-1")
//	if err := node.ValidateForCreate(); err != nil {
//	    // Handle validation error
//	}
//
// # Serialization
//
// All types carry JSON and YAML struct tags. Enum-typed fields enforce the
// closed-set invariant during decoding in both formats.
package types
