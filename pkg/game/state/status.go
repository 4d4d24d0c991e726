package state

// Status is the run state of a game session
type Status int

// Run statuses
const (
	StatusIdle Status = iota
	StatusRunning
	StatusWin
	StatusFail
)

var statusNames = [...]string{"IDLE", "RUNNING", "WIN", "FAIL"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "UNKNOWN"
	}
	return statusNames[s]
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsFinished returns true once a run ended in WIN or FAIL
func (s Status) IsFinished() bool {
	return s == StatusWin || s == StatusFail
}
