package sysclock

import (
	"time"

	"github.com/olyamironova/limit-order-book/internal/port"
)

var _ port.Clock = Clock{}

// Clock reads the system wall clock.
type Clock struct{}

func New() Clock { return Clock{} }

func (Clock) Now() int64 { return time.Now().UnixNano() }
