// Package headlines extracts article records from a news front page and
// derives a ranked keyword table and a dashboard summary from them.
//
// This package contains domain types, interfaces and the pure analysis
// functions following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, rod/, yaml/).
package headlines
