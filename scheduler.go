package ranger

import "slices"

// Scheduler drives per-frame updates for timing targets. Targets live in two
// ordered tiers; System targets are updated before Normal targets. Each tier
// holds a node at most once, keyed by id.
type Scheduler struct {
	system []*Node
	normal []*Node

	// pass is the tier snapshot walked by Update; removed is set when a
	// target leaves a tier during that walk.
	pass    []*Node
	removed bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) tier(p TimingPriority) *[]*Node {
	if p == PrioritySystem {
		return &s.system
	}
	return &s.normal
}

// Register adds n to the tier named by n.Priority. Registering a node whose
// id is already present in that tier is a no-op.
func (s *Scheduler) Register(n *Node) {
	t := s.tier(n.Priority)
	for _, existing := range *t {
		if existing.ID == n.ID {
			return
		}
	}
	*t = append(*t, n)
}

// Unregister removes n from its tier.
func (s *Scheduler) Unregister(n *Node) {
	t := s.tier(n.Priority)
	*t = s.removeByID(*t, n.ID)
}

// UnregisterByID removes the node with the given id from both tiers.
func (s *Scheduler) UnregisterByID(id uint32) {
	s.system = s.removeByID(s.system, id)
	s.normal = s.removeByID(s.normal, id)
}

// removeByID deletes matching entries while keeping the rest in order.
func (s *Scheduler) removeByID(nodes []*Node, id uint32) []*Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	if len(out) < len(nodes) {
		s.removed = true
	}
	clear(nodes[len(out):])
	return out
}

// Update calls every unpaused target's update with dt seconds, System tier
// first. Targets may register or unregister targets from their update:
// targets added during a pass first run on the next one, and targets
// removed during a pass are skipped for the rest of it.
func (s *Scheduler) Update(dt float64) {
	s.updateTier(&s.system, dt)
	s.updateTier(&s.normal, dt)
}

func (s *Scheduler) updateTier(tier *[]*Node, dt float64) {
	s.pass = append(s.pass[:0], *tier...)
	s.removed = false
	for _, n := range s.pass {
		if s.removed && !slices.Contains(*tier, n) {
			continue
		}
		if !n.paused {
			n.update(dt)
		}
	}
	clear(s.pass)
}

// PauseAll pauses every target in one tier.
func (s *Scheduler) PauseAll(p TimingPriority) {
	for _, n := range *s.tier(p) {
		n.paused = true
	}
}

// ResumeAll resumes every target in one tier.
func (s *Scheduler) ResumeAll(p TimingPriority) {
	for _, n := range *s.tier(p) {
		n.paused = false
	}
}

// Resume unpauses the registered target with the given id. It reports
// whether such a target exists.
func (s *Scheduler) Resume(id uint32) bool {
	for _, tier := range [][]*Node{s.system, s.normal} {
		for _, n := range tier {
			if n.ID == id {
				n.paused = false
				return true
			}
		}
	}
	return false
}

// Len returns the number of targets in one tier.
func (s *Scheduler) Len(p TimingPriority) int {
	return len(*s.tier(p))
}

// RegisterTimingTargets registers every timing target in root's subtree.
func (s *Scheduler) RegisterTimingTargets(root *Node) {
	Walk(root, func(n *Node) bool {
		if n.timingTarget {
			s.Register(n)
		}
		return true
	})
}

// UnregisterTimingTargets unregisters every timing target in root's subtree.
func (s *Scheduler) UnregisterTimingTargets(root *Node) {
	Walk(root, func(n *Node) bool {
		if n.timingTarget {
			s.Unregister(n)
		}
		return true
	})
}
