// Package ranges implements the IP ranges document model for awsranges.
//
// This package handles loading the published ip-ranges JSON document,
// consolidating its per-service prefix records into one entry per distinct
// network, ordering entries by numeric network address and rendering them
// for output.
//
// # Processing Pipeline
//
// The document flows through a fixed pipeline:
//
//	raw prefixes -> Consolidate -> SortByNetwork -> filtering -> Render
//
// Consolidation merges all records sharing a network into a single
// ConsolidatedPrefix listing every service of that network, in source
// order. Sorting happens exactly once, immediately after consolidation;
// all later filtering preserves relative order.
//
// # Document Sources
//
// Documents can be fetched over HTTP or read from a local file. Files
// with a .gz suffix are decompressed transparently.
package ranges
