// Package smyth indexes section markers found in a directory of HTML
// documents. Elements carrying a marker class are collected as records,
// ordered by their identifiers and rendered as CSV or JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, slog/).
package smyth
