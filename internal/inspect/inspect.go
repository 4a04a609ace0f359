package inspect

import "fmt"

// Status is the currently-effective pair of kernel-exposed attributes
// for a running process.
type Status struct {
	PID         int
	Niceness    int
	OOMScoreAdj int
}

func (s Status) String() string {
	return fmt.Sprintf("PID %d: niceness=%d, oom_score_adj=%d", s.PID, s.Niceness, s.OOMScoreAdj)
}

// Settings reads the live niceness and OOM score adjustment for a PID.
// Each attribute failing to read yields its own labeled error so
// callers can tell which one was unreadable.
func Settings(pid int) (Status, error) {
	nice, err := readNiceness(pid)
	if err != nil {
		return Status{}, fmt.Errorf("get nice error: %w", err)
	}
	oom, err := readOOMScoreAdj(pid)
	if err != nil {
		return Status{}, fmt.Errorf("get oom error: %w", err)
	}
	return Status{PID: pid, Niceness: nice, OOMScoreAdj: oom}, nil
}
