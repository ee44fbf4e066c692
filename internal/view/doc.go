// Package view gives typed, read-only access to syntax tree nodes.
//
// Of picks the view type for a node from its kind. Views are small values
// holding the tree and the node ID; every accessor reads the tree on demand
// and none of them modify it. Nodes without a specialised view get Generic.
//
// Behaviour shared between views is expressed by capability interfaces
// (Named, Valued, Content, VariableBinder) and queried with As.
package view
