package enums

import "fmt"

// QueueState reflects whether the notification delivery queue is draining.
type QueueState string

const (
	QueueStateRunning QueueState = "RUNNING"
	QueueStatePaused  QueueState = "PAUSED"
)

var validQueueStates = []QueueState{
	QueueStateRunning,
	QueueStatePaused,
}

// String implements fmt.Stringer.
func (q QueueState) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QueueState.
func (q QueueState) IsValid() bool {
	for _, candidate := range validQueueStates {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQueueState converts raw input into a QueueState.
func ParseQueueState(value string) (QueueState, error) {
	for _, candidate := range validQueueStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid queue state %q", value)
}
