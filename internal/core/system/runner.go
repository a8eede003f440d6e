package system

import "sort"

// Runner executes systems in phase order on every flush. Systems sharing
// a phase run in registration order (the sort is stable).
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Flush runs every registered system once. A failing system aborts the
// remaining systems and its error propagates to the caller; the host tree
// may be left partially updated.
func (r *Runner) Flush() error {
	r.ensureSorted()
	for _, s := range r.systems {
		if err := s.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) Len() int {
	return len(r.systems)
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
