package cst

// NodeID indexes a node in a Tree. IDs are 1-based.
type NodeID uint32

// NoNodeID is the zero NodeID; it never names a node.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
