// Package policy decides which settings pair applies to a launch
// request. Explicit aliases are served by the local store alone; the
// dynamic alias combines a time-gated remote fetch with a rule-based
// fallback so a decision always exists.
package policy
