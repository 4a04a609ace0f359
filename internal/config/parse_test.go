package config

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseRecordValid(t *testing.T) {
	cases := []struct {
		line      string
		wantAlias Alias
		wantCfg   Polite
	}{
		{"1;5;100", 1, Polite{Niceness: 5, OOMScoreAdj: 100}},
		{"65;0;0", 65, Polite{}},
		{"-3;-20;-1000", -3, Polite{Niceness: -20, OOMScoreAdj: -1000}},
		{"127;19;1000", 127, Polite{Niceness: 19, OOMScoreAdj: 1000}},
		{"2; 10 ; 250", 2, Polite{Niceness: 10, OOMScoreAdj: 250}},
		{"4;1;2;trailing-field", 4, Polite{Niceness: 1, OOMScoreAdj: 2}},
	}
	for _, tc := range cases {
		alias, cfg, err := ParseRecord(tc.line)
		if err != nil {
			t.Fatalf("ParseRecord(%q) returned error: %v", tc.line, err)
		}
		if alias != tc.wantAlias {
			t.Fatalf("ParseRecord(%q) alias: got %d want %d", tc.line, alias, tc.wantAlias)
		}
		if cfg != tc.wantCfg {
			t.Fatalf("ParseRecord(%q) config: got %+v want %+v", tc.line, cfg, tc.wantCfg)
		}
	}
}

func TestParseRecordReservedAlias(t *testing.T) {
	for _, line := range []string{"0;5;100", "0;0;0", "0;-20;1000"} {
		if _, _, err := ParseRecord(line); !errors.Is(err, ErrAliasReserved) {
			t.Fatalf("ParseRecord(%q): got %v want ErrAliasReserved", line, err)
		}
	}
}

func TestParseRecordOutOfRange(t *testing.T) {
	cases := []string{
		"1;-21;0",
		"1;20;0",
		"1;0;-1001",
		"1;0;1001",
	}
	for _, line := range cases {
		if _, _, err := ParseRecord(line); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("ParseRecord(%q): got %v want ErrOutOfRange", line, err)
		}
	}
}

func TestParseRecordMalformed(t *testing.T) {
	if _, _, err := ParseRecord("1;5"); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("short record: got %v want ErrInvalidRecord", err)
	}
	if _, _, err := ParseRecord(""); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("empty record: got %v want ErrInvalidRecord", err)
	}

	var numErr *strconv.NumError
	if _, _, err := ParseRecord("one;5;100"); !errors.As(err, &numErr) {
		t.Fatalf("non-numeric alias: got %v want a strconv error", err)
	}
	if _, _, err := ParseRecord("1;five;100"); !errors.As(err, &numErr) {
		t.Fatalf("non-numeric niceness: got %v want a strconv error", err)
	}
	// Alias width is int8; overflow is a parse failure, not a wrap.
	if _, _, err := ParseRecord("128;5;100"); !errors.As(err, &numErr) {
		t.Fatalf("overflowing alias: got %v want a strconv error", err)
	}
}
