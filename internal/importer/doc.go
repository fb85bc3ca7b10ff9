// Package importer drives punch and rule sheet ingestion end to end.
//
// A punch import parses the sheet, collapses intra-batch duplicates at minute
// granularity, and excludes rows whose signature already exists in the store
// within the batch's date span. The cross-batch check and the insert happen
// under a file lock so concurrent imports covering overlapping ranges cannot
// insert the same punch twice. Each accepted batch is tagged with a UUID so
// its rows can be traced back to one upload.
package importer
