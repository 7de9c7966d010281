// Package delivery models the courier aggregator's vocabulary as seen by the
// storefront: the store's delivery configuration, quotations with their stops,
// and courier orders.
//
// The business rules that decide whether a quotation can still be turned into
// a courier order live here (Quotation.ResolveSchedule, Quotation.ResolveStopIDs) so
// that the application layer only sequences calls.
package delivery
