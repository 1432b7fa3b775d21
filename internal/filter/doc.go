// Package filter implements the filter expression language for awsranges.
//
// Filter terms are free-form command-line arguments, classified once at
// parse time:
//
//   - "keyword" or "+keyword" keeps entries whose services or region match
//   - "-keyword" drops entries whose services or region match
//   - "=keyword" keeps entries whose single service is the keyword (a
//     region match does not require the single-service condition)
//   - an IP address or CIDR block keeps entries whose network overlaps it
//
// Keyword terms narrow the working set left to right; there is no AND/OR
// grouping between terms. Address terms are buffered during parsing and
// applied once after all keyword terms.
package filter
