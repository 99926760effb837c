package state

// Phase enumerates the search lifecycle phases.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the current search status. Only Failed carries a message; the
// fields are unexported so a Status can only be built by the constructors below.
type Status struct {
	phase   Phase
	message string
}

// Idle is the status before any submission.
func Idle() Status { return Status{phase: PhaseIdle} }

// Loading is the status while a request is outstanding.
func Loading() Status { return Status{phase: PhaseLoading} }

// Succeeded is the status after a search returned at least one match.
func Succeeded() Status { return Status{phase: PhaseSucceeded} }

// Failed is the terminal error status with a user-facing message.
func Failed(message string) Status { return Status{phase: PhaseFailed, message: message} }

// Phase returns the lifecycle phase.
func (s Status) Phase() Phase { return s.phase }

// Message returns the user-facing error message, or "" unless the phase is Failed.
func (s Status) Message() string {
	if s.phase != PhaseFailed {
		return ""
	}
	return s.message
}

func (s Status) IsLoading() bool { return s.phase == PhaseLoading }
func (s Status) IsFailed() bool  { return s.phase == PhaseFailed }

// IsTerminal reports whether the status ends a submission.
func (s Status) IsTerminal() bool {
	return s.phase == PhaseSucceeded || s.phase == PhaseFailed
}

func (s Status) String() string {
	if s.phase == PhaseFailed {
		return "failed: " + s.message
	}
	return s.phase.String()
}
