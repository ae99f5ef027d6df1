package timer

import (
	"time"

	"github.com/dayzero-app/dayzero/util"
	"github.com/dayzero-app/dayzero/util/localtime"
)

// Record is an incident timer as the storage collaborator hands it over;
// the engine never mutates or persists it.
type Record struct {
	ID           string
	ResetInstant time.Time
	IsPublic     bool
}

// NewRecord creates a Record with a fresh UUID; the reset instant is
// normalized to millisecond UTC.
func NewRecord(reset time.Time, isPublic bool) Record {
	return Record{
		ID:           util.UUIDString(),
		ResetInstant: localtime.Normalize(reset),
		IsPublic:     isPublic,
	}
}

// ActiveTimer is the projection of the selected record the scheduler reads
// on every tick.
type ActiveTimer struct {
	ID           string
	ResetInstant time.Time
	IsPublic     bool
}

func (rc Record) Active() ActiveTimer {
	return ActiveTimer{
		ID:           rc.ID,
		ResetInstant: rc.ResetInstant,
		IsPublic:     rc.IsPublic,
	}
}
