// Package invalidator implements the broadcast signal source described in
// spec §3.3/§4.4: a point components and callbacks subscribe to, which fires
// without carrying any payload of its own.
package invalidator

// Clock is the scheduler's monotonic tick counter. Invalidator only needs to
// read it and compare against its own mtime; it never advances the clock
// itself (that happens once per batch, in the scheduler).
type Clock interface {
	Now() uint64
}

// Invalidatable is implemented by anything that can be a permanent
// subscriber: components implement it directly, and a raw callback is
// wrapped in callbackInvalidatable to satisfy it uniformly.
type Invalidatable interface {
	Invalidate()
}

type callbackInvalidatable func()

func (f callbackInvalidatable) Invalidate() { f() }

// Invalidator is a broadcast point. It tracks permanent and transient
// subscribers separately and stamps its own mtime on fire so that
// re-invalidating within the same scheduler tick is a no-op (spec §8.6).
type Invalidator struct {
	clock     Clock
	mtime     uint64
	permanent subscriptionSet
	transient subscriptionSet
}

// New creates an Invalidator driven by clock.
func New(clock Clock) *Invalidator {
	return &Invalidator{clock: clock}
}

// MTime returns the clock value at the Invalidator's last fire.
func (inv *Invalidator) MTime() uint64 { return inv.mtime }

// Subscribe registers a permanent subscriber, returning a Subscription the
// caller can Cancel() explicitly.
func (inv *Invalidator) Subscribe(sub Invalidatable) *Subscription {
	s := &Subscription{invalidator: inv, subscriber: sub, transient: false}
	inv.permanent.add(s)
	return s
}

// SubscribeFunc is a Subscribe convenience for raw callbacks.
func (inv *Invalidator) SubscribeFunc(cb func()) *Subscription {
	return inv.Subscribe(callbackInvalidatable(cb))
}

// TransientSubscribe registers a subscriber that is detached the moment the
// Invalidator next fires, or earlier by an explicit Cancel. A component's
// own Invalidate does not cancel transient subscriptions it holds; no
// per-component transient list exists.
func (inv *Invalidator) TransientSubscribe(sub Invalidatable) *Subscription {
	s := &Subscription{invalidator: inv, subscriber: sub, transient: true}
	inv.transient.add(s)
	return s
}

// TransientSubscribeFunc is TransientSubscribe for raw callbacks.
func (inv *Invalidator) TransientSubscribeFunc(cb func()) *Subscription {
	return inv.TransientSubscribe(callbackInvalidatable(cb))
}

// cancel removes sub from whichever list it is registered under. Called by
// Subscription.Cancel; a no-op if already removed.
func (inv *Invalidator) cancel(s *Subscription) {
	if s.transient {
		inv.transient.removeSwapLast(s)
	} else {
		inv.permanent.removeSwapLast(s)
	}
}

// Invalidate fires the Invalidator: every permanent subscriber is notified,
// then the transient list is atomically detached and fired. The mtime guard
// means firing twice within the same scheduler tick only notifies
// subscribers once (spec §8.6), which is what breaks reentrant invalidation
// cycles.
func (inv *Invalidator) Invalidate() {
	if inv.mtime >= inv.clock.Now() {
		return
	}
	inv.mtime = inv.clock.Now()

	inv.permanent.each(func(s *Subscription) {
		s.subscriber.Invalidate()
	})

	fired := inv.transient
	inv.transient = subscriptionSet{}
	fired.each(func(s *Subscription) {
		s.subscriber.Invalidate()
	})
}
