package market

import (
	"testing"
	"time"
)

func TestEventLogOrdering(t *testing.T) {
	log := NewEventLog()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	log.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	log.Record("first")
	log.Record("second")
	log.Record("third")

	var seqs []int
	var descs []string
	for ev := range log.All() {
		seqs = append(seqs, ev.Seq)
		descs = append(descs, ev.Description)
	}
	if len(seqs) != 3 || seqs[0] != 1 || seqs[2] != 3 {
		t.Errorf("seqs = %v", seqs)
	}
	if descs[1] != "second" {
		t.Errorf("descs = %v", descs)
	}

	since := log.Since(1)
	if len(since) != 2 || since[0].Description != "second" {
		t.Errorf("Since(1) = %+v", since)
	}
	if !since[1].At.After(since[0].At) {
		t.Errorf("timestamps not increasing: %v, %v", since[0].At, since[1].At)
	}
	if log.Since(3) != nil || log.Since(10) != nil {
		t.Error("Since past the end should be empty")
	}
}
