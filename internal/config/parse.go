package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel parse failures callers branch on with errors.Is.
var (
	ErrInvalidRecord = errors.New("invalid config")
	ErrAliasReserved = errors.New("alias 0 reserved")
	ErrOutOfRange    = errors.New("value out of range")
)

const fieldSeparator = ";"

// ParseRecord parses one configuration record of the form
// <alias>;<niceness>;<oomScoreAdj> into a validated (alias, settings)
// pair. It is a pure function of its input line.
func ParseRecord(line string) (Alias, Polite, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 3 {
		return 0, Polite{}, fmt.Errorf("%w: expected alias;niceness;oomScoreAdj, got %q", ErrInvalidRecord, line)
	}

	rawAlias, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 8)
	if err != nil {
		return 0, Polite{}, fmt.Errorf("parse alias: %w", err)
	}
	if Alias(rawAlias) == DynamicAlias {
		return 0, Polite{}, ErrAliasReserved
	}

	niceness, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, Polite{}, fmt.Errorf("parse niceness: %w", err)
	}
	oomScoreAdj, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, Polite{}, fmt.Errorf("parse oom score adjustment: %w", err)
	}

	if niceness < MinNiceness || niceness > MaxNiceness {
		return 0, Polite{}, fmt.Errorf("%w: niceness %d not in [%d, %d]", ErrOutOfRange, niceness, MinNiceness, MaxNiceness)
	}
	if oomScoreAdj < MinOOMScoreAdj || oomScoreAdj > MaxOOMScoreAdj {
		return 0, Polite{}, fmt.Errorf("%w: oom score adjustment %d not in [%d, %d]", ErrOutOfRange, oomScoreAdj, MinOOMScoreAdj, MaxOOMScoreAdj)
	}

	return Alias(rawAlias), Polite{Niceness: niceness, OOMScoreAdj: oomScoreAdj}, nil
}

// skippable reports whether a line is ignored by both the local and
// remote readers: blank, or a comment.
func skippable(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}
