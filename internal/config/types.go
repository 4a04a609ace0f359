package config

import "fmt"

// Alias identifies a named configuration profile. Alias 0 is reserved
// to mean "resolve dynamically" and never appears as a mapping key.
type Alias int8

// DynamicAlias is the sentinel that routes a launch through dynamic
// resolution instead of the local store.
const DynamicAlias Alias = 0

// Niceness and OOM-score-adjustment bounds accepted by the parser.
// Values outside these ranges are rejected, never clamped.
const (
	MinNiceness    = -20
	MaxNiceness    = 19
	MinOOMScoreAdj = -1000
	MaxOOMScoreAdj = 1000
)

// Polite is a resolved settings pair: the scheduling niceness applied to
// the child (lower = more CPU preference) and the kernel OOM-killer
// score adjustment (higher = killed earlier under memory pressure).
// Compared and passed by value.
type Polite struct {
	Niceness    int
	OOMScoreAdj int
}

func (p Polite) String() string {
	return fmt.Sprintf("niceness=%d, oom_score_adj=%d", p.Niceness, p.OOMScoreAdj)
}

// Mapping associates aliases with their settings. Built fresh on every
// load; callers never mutate a returned mapping.
type Mapping map[Alias]Polite
