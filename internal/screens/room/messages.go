package room

import (
	"time"

	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/interview"
)

// timerTickMsg is sent every second to drive the question countdown.
type timerTickMsg time.Time

// commitDoneMsg is sent when the finished session has been handed to
// the persistence gateway.
type commitDoneMsg struct {
	Outcome *interview.Outcome
	Result  gateway.Result
}
