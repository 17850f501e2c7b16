// Package report renders the grouped-by-room entity state report.
//
// A report is built fresh per request: current states are fetched from
// upstream, entity ids filtered by a caller-supplied regular expression
// (lights and switches by default), each entity resolved to its area, and
// the result rendered as plain text with one section per area. Areas and
// the entities within them are sorted lexically so the output is stable.
package report
