// Package htmlgrade checks HTML documents for the presence of expected CSS
// selectors and reports the outcome as an ordered JSON object.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, json/).
package htmlgrade
