package invalidator

// Subscription links one subscriber to one Invalidator. A component or
// callback that wants to stop listening calls Cancel; nothing else mutates a
// Subscription after it is created.
type Subscription struct {
	invalidator *Invalidator
	subscriber  Invalidatable
	transient   bool
	canceled    bool
}

// Cancel detaches the subscription from its Invalidator. Canceling twice is
// a no-op, not a programmer error here (unlike component disposal), so a
// caller may cancel a subscription without first checking whether it was
// already canceled.
func (s *Subscription) Cancel() {
	if s == nil || s.canceled {
		return
	}
	s.canceled = true
	s.invalidator.cancel(s)
}

// subscriptionSet is the zero/one/many optimization from spec §9: most
// components have at most one live subscription of a given kind, so paying
// for a slice allocation in the common case is wasteful.
type subscriptionSet struct {
	one  *Subscription
	many []*Subscription
}

func (s *subscriptionSet) add(sub *Subscription) {
	switch {
	case s.one == nil && s.many == nil:
		s.one = sub
	case s.many == nil:
		s.many = []*Subscription{s.one, sub}
		s.one = nil
	default:
		s.many = append(s.many, sub)
	}
}

// removeSwapLast removes sub in O(1) by swapping it with the last element;
// subscription order carries no meaning so this is safe.
func (s *subscriptionSet) removeSwapLast(sub *Subscription) {
	if s.one == sub {
		s.one = nil
		return
	}
	for i, c := range s.many {
		if c == sub {
			last := len(s.many) - 1
			s.many[i] = s.many[last]
			s.many = s.many[:last]
			return
		}
	}
}

// each calls fn for every member of the set. fn must not mutate the set
// being iterated (callers that need that, like Invalidate's transient pass,
// swap the set out first).
func (s *subscriptionSet) each(fn func(*Subscription)) {
	if s.one != nil {
		fn(s.one)
	}
	for _, sub := range s.many {
		fn(sub)
	}
}

// detachAll cancels every subscription in the set and empties it.
func (s *subscriptionSet) detachAll() {
	if s.one != nil {
		s.one.canceled = true
		s.one = nil
	}
	for _, sub := range s.many {
		sub.canceled = true
	}
	s.many = nil
}
