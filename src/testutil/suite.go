// Package testutil มี helper สำหรับจับเวลาและสรุปผลชุดทดสอบ
package testutil

import (
	"testing"
	"time"
)

// Result ผลของกรณีทดสอบหนึ่งกรณี
type Result struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite เก็บผลของหลายกรณีทดสอบเพื่อสรุปตอนท้าย
type Suite struct {
	Name    string
	Results []Result
	Total   time.Duration
}

// NewSuite creates an empty suite. Call Summary via t.Cleanup or defer.
func NewSuite(name string) *Suite {
	return &Suite{Name: name, Results: make([]Result, 0)}
}

// Run executes fn as a subtest and records its duration and outcome.
func (s *Suite) Run(t *testing.T, name string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run(name, func(t *testing.T) {
		start := time.Now()
		defer func() {
			d := time.Since(start)
			s.Results = append(s.Results, Result{Name: name, Duration: d, Passed: !t.Failed()})
			s.Total += d
		}()
		fn(t)
	})
}

// Passed นับจำนวนกรณีที่ผ่าน
func (s *Suite) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// Summary logs a one-line-per-case report.
func (s *Suite) Summary(t *testing.T) {
	t.Helper()
	if len(s.Results) == 0 {
		return
	}
	t.Logf("📊 %s: %d/%d passed in %v (avg %v)",
		s.Name, s.Passed(), len(s.Results), s.Total, s.Total/time.Duration(len(s.Results)))
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		t.Logf("   %s %s: %v", status, r.Name, r.Duration)
	}
}

// AssertWithin fails t when fn takes longer than limit.
func AssertWithin(t *testing.T, name string, limit time.Duration, fn func()) time.Duration {
	t.Helper()
	start := time.Now()
	fn()
	d := time.Since(start)
	if d > limit {
		t.Errorf("❌ %s took %v, expected less than %v", name, d, limit)
	}
	return d
}
