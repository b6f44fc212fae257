package watcher

// Phase is the state of an edge-triggered condition.
type Phase uint8

const (
	Inactive Phase = iota
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "inactive"
}

// Latch fires once on entry into a condition and stays silent until it is re-armed.
type Latch struct {
	Phase Phase
}

// Enter moves the latch to Active. It reports true only on the Inactive -> Active edge.
func (l *Latch) Enter() bool {
	if l.Phase == Active {
		return false
	}
	l.Phase = Active
	return true
}

// Reset re-arms the latch.
func (l *Latch) Reset() {
	l.Phase = Inactive
}

// Step enters the latch while present holds and resets it otherwise.
// It reports whether this call was an entry.
func (l *Latch) Step(present bool) bool {
	if present {
		return l.Enter()
	}
	l.Reset()
	return false
}

// IsActive reports whether the latch has fired for the current occurrence.
func (l Latch) IsActive() bool {
	return l.Phase == Active
}
