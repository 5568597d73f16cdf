package player

const errorBufferSize = 16

// ErrorEvent is emitted when a command fails.
type ErrorEvent struct {
	Operation string // e.g. "load"
	Path      string
	Err       error
}

// Subscription delivers engine snapshots and errors.
//
// Snapshots is a one-slot channel: a new snapshot replaces an unread one,
// so a slow reader always sees the latest state.
type Subscription struct {
	Snapshots <-chan Snapshot
	Errors    <-chan ErrorEvent
	Done      <-chan struct{}

	snapCh  chan Snapshot
	errorCh chan ErrorEvent
	doneCh  chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		snapCh:  make(chan Snapshot, 1),
		errorCh: make(chan ErrorEvent, errorBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Snapshots = s.snapCh
	s.Errors = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSnapshot replaces any pending snapshot with snap.
func (s *Subscription) sendSnapshot(snap Snapshot) {
	select {
	case s.snapCh <- snap:
	default:
		select {
		case <-s.snapCh:
		default:
		}
		select {
		case s.snapCh <- snap:
		default:
		}
	}
}

// sendError sends an error event, dropping it if the buffer is full.
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}

// Subscribe registers a new subscriber. It immediately receives the
// current snapshot.
func (e *Engine) Subscribe() *Subscription {
	sub := newSubscription()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		sub.close()
		return sub
	}
	sub.sendSnapshot(e.snapshotLocked())

	e.subsMu.Lock()
	e.subs = append(e.subs, sub)
	e.subsMu.Unlock()
	return sub
}

// publishLocked sends the current snapshot to every subscriber.
func (e *Engine) publishLocked() {
	snap := e.snapshotLocked()
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for _, sub := range e.subs {
		sub.sendSnapshot(snap)
	}
}

func (e *Engine) publishError(op, path string, err error) {
	ev := ErrorEvent{Operation: op, Path: path, Err: err}
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for _, sub := range e.subs {
		sub.sendError(ev)
	}
}
