// Package services provides domain services for the fulfillment workflow.
//
// The package includes:
//   - AccessGate: the single authorization decision point mapping
//     (actor role, actor identity, operation, target order) to allow/deny
//
// Domain services hold business rules that span aggregates — here, the
// relationship between the acting principal and the order aggregate — so
// that no individual handler re-implements them.
package services
