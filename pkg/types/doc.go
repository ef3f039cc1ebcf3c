// Package types defines shared Go types used by the tracker packages.
// These are the canonical in-memory representations of a patient's vitals
// and the risk alerts derived from them.
package types
