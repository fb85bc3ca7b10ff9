// Package report rolls reconciled daily records into per-employee presence
// statistics.
//
// Reports are pure derived views: they are recomputed from the record set on
// every request and never persisted. Partner rules enrich the output by
// normalized employee key; unmapped employees fall back to "-". Final ordering
// is by display name using a locale-aware, case-insensitive collation.
package report
