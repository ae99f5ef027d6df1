package cmds

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dayzero-app/dayzero/timer"
	"github.com/dayzero-app/dayzero/util"
	"github.com/dayzero-app/dayzero/util/localtime"
)

// StoreRecord is one timer entry of the YAML store; the store file stands in
// for the fetching collaborator the engine never talks to directly.
type StoreRecord struct {
	ID    string    `yaml:"id,omitempty"`
	Reset time.Time `yaml:"reset"`
}

// TimerStore is the on-disk shape: an optional shared timer and the personal
// timers of the site owner.
type TimerStore struct {
	Public   *StoreRecord  `yaml:"public,omitempty"`
	Personal []StoreRecord `yaml:"personal,omitempty"`
}

func LoadTimerStore(path string) (*TimerStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read timer store, %q", path)
	}

	return ParseTimerStore(b)
}

func ParseTimerStore(b []byte) (*TimerStore, error) {
	var st TimerStore
	if err := yaml.Unmarshal(b, &st); err != nil {
		return nil, errors.Wrap(err, "failed to parse timer store")
	}

	if st.Public != nil && st.Public.Reset.IsZero() {
		return nil, errors.Errorf("public timer misses reset instant")
	}

	for i := range st.Personal {
		if st.Personal[i].Reset.IsZero() {
			return nil, errors.Errorf("personal timer #%d misses reset instant", i)
		}
	}

	return &st, nil
}

func (st *TimerStore) PublicRecord() *timer.Record {
	if st.Public == nil {
		return nil
	}

	rc := st.Public.record(true)

	return &rc
}

func (st *TimerStore) PersonalRecords() []timer.Record {
	if len(st.Personal) < 1 {
		return nil
	}

	rcs := make([]timer.Record, len(st.Personal))
	for i := range st.Personal {
		rcs[i] = st.Personal[i].record(false)
	}

	return rcs
}

func (sr StoreRecord) record(isPublic bool) timer.Record {
	id := sr.ID
	if len(id) < 1 {
		id = util.UUIDString()
	}

	return timer.Record{
		ID:           id,
		ResetInstant: localtime.Normalize(sr.Reset),
		IsPublic:     isPublic,
	}
}
