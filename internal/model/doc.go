// Package model defines domain data structures shared by the pipeline and the
// interactive surfaces: link records, download results, per-row media info,
// run states and the events a run emits.
package model
