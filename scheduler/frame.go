package scheduler

// writeTask is either a Component (its Update is invoked when dequeued) or
// a plain func().
type writeTask any

func runWriteTask(t writeTask) {
	switch v := t.(type) {
	case Component:
		v.Update()
	case func():
		v()
	}
}

// Frame holds the four queues spec §3.5 assigns to one animation-frame
// execution window: prioritized writes (bucketed by depth), plain writes,
// reads, and after-tasks.
type Frame struct {
	prioWrites    map[int][]writeTask
	prioDepths    []int // depths with a non-empty bucket, kept sorted ascending
	plainWrites   []writeTask
	reads         []func()
	afters        []func()
}

func newFrame() *Frame {
	return &Frame{prioWrites: make(map[int][]writeTask)}
}

// Write enqueues cb (a Component or a func()). With priority given, the
// task is routed into the depth-indexed bucket for that priority; with no
// priority, it lands in the unordered plain write queue.
func (f *Frame) Write(cb writeTask, priority ...int) {
	if len(priority) == 0 {
		f.plainWrites = append(f.plainWrites, cb)
		return
	}
	depth := priority[0]
	if _, exists := f.prioWrites[depth]; !exists {
		f.insertDepth(depth)
	}
	f.prioWrites[depth] = append(f.prioWrites[depth], cb)
}

func (f *Frame) insertDepth(depth int) {
	i := 0
	for i < len(f.prioDepths) && f.prioDepths[i] < depth {
		i++
	}
	f.prioDepths = append(f.prioDepths, 0)
	copy(f.prioDepths[i+1:], f.prioDepths[i:])
	f.prioDepths[i] = depth
}

// Read enqueues cb into the read queue.
func (f *Frame) Read(cb func()) { f.reads = append(f.reads, cb) }

// After enqueues cb into the after-task queue.
func (f *Frame) After(cb func()) { f.afters = append(f.afters, cb) }

// UpdateComponent is shorthand for Write(c, c.Depth()).
func (f *Frame) UpdateComponent(c Component) { f.Write(c, c.Depth()) }

func (f *Frame) hasPrioWrites() bool  { return len(f.prioDepths) > 0 }
func (f *Frame) hasPlainWrites() bool { return len(f.plainWrites) > 0 }
func (f *Frame) hasWrites() bool      { return f.hasPrioWrites() || f.hasPlainWrites() }
func (f *Frame) hasReads() bool       { return len(f.reads) > 0 }

// drainPrioOnce runs one ascending sweep over the depth buckets present at
// the moment it is called. Tasks that enqueue further prioritized writes
// during this sweep land in a bucket this sweep has already iterated past
// (or a brand-new one); those are picked up by the next sweep, per spec
// §4.2's "must be picked up on the next outer iteration".
func (f *Frame) drainPrioOnce() int {
	depths := f.prioDepths
	f.prioDepths = nil
	count := 0
	for _, depth := range depths {
		tasks := f.prioWrites[depth]
		delete(f.prioWrites, depth)
		for _, t := range tasks {
			runWriteTask(t)
			count++
		}
	}
	return count
}

// drainPlainOnce runs one FIFO sweep over the plain write queue as it stood
// when called.
func (f *Frame) drainPlainOnce() int {
	tasks := f.plainWrites
	f.plainWrites = nil
	for _, t := range tasks {
		runWriteTask(t)
	}
	return len(tasks)
}

// drainReadsOnce runs one FIFO sweep over the read queue as it stood when
// called. Reads queued during this sweep run in the following outer-loop
// iteration, per spec §4.2.
func (f *Frame) drainReadsOnce() int {
	tasks := f.reads
	f.reads = nil
	for _, cb := range tasks {
		cb()
	}
	return len(tasks)
}

// drainAfters runs every after-task queued so far. Unlike writes and reads,
// after-tasks may not re-enter write/read (spec §4.2 step 5): the tasks run
// against a fixed snapshot, and a task an after-task adds to this frame's
// queues is not run by this tick; only work queued on NextFrame() runs, in
// the following frame.
func (f *Frame) drainAfters() int {
	tasks := f.afters
	f.afters = nil
	for _, cb := range tasks {
		cb()
	}
	return len(tasks)
}
