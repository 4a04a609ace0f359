package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Section markers bounding the active region of a local config file.
// Lines outside the markers are never parsed, and the end marker stops
// scanning immediately even when more content follows.
const (
	sectionStart = "-START-"
	sectionEnd   = "-END-"
)

// DefaultPath is the local configuration file consulted when no
// explicit path is given.
const DefaultPath = "polite.conf"

// LoadLocal reads the alias section of a local configuration file.
// Every record between the markers must parse; a single malformed line
// fails the whole load rather than returning a partial mapping.
func LoadLocal(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	configs := make(Mapping)
	inSection := false
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == sectionStart {
			inSection = true
			continue
		}
		if line == sectionEnd {
			break
		}
		if !inSection || skippable(line) {
			continue
		}
		alias, cfg, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, lineNo, err)
		}
		configs[alias] = cfg
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return configs, nil
}
