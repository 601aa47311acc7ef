// Package order implements the fulfillment workflow's aggregate: a
// customer's shopping-list Order and its line Items, governed by the
// pending → in_progress → completed | cancelled state machine.
//
// The aggregate is the unit of consistency. Item purchase flags, the
// completion check, and the status all change through Order methods only,
// so the completion invariant — completedAt set if and only if the status
// is completed — can never be observed broken. Callers persist the whole
// aggregate within one transaction.
package order
