// Package config parses polite's alias configuration records and loads
// them from the two supported sources.
//
// The record grammar is shared: <alias>;<niceness>;<oomScoreAdj> with
// alias a nonzero int8, niceness in [-20, 19], and the OOM score
// adjustment in [-1000, 1000]. The local file bounds its records with
// -START-/-END- markers and treats any malformed record as fatal, since
// local aliases are authoritative. The remote document has no markers
// and is aggregated best-effort, skipping malformed lines.
package config
