// Package order holds the storefront Order aggregate.
//
// The package includes:
//   - Order: customer, service type, totals and the courier integration state
//   - Status: the order workflow state machine
//   - ServiceType: delivery or pickup
//
// Key business rules:
//   - Delivery orders need a destination; pickup orders never carry courier data
//   - A courier order is attached at most once per order
//   - A confirmed delivery order with a quotation and no courier order needs dispatch
package order
