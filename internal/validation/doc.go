// Package validation implements the scenario validation engine: a legal
// citation checker over a compiled pattern catalog, a structural schema
// check for dataset records, a trauma-informed language check, and batch
// aggregation across whole datasets. Validators return findings as data so
// batch processing can continue across all records; only the file boundary
// returns errors.
package validation
