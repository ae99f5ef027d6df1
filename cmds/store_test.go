package cmds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/dayzero-app/dayzero/timer"
)

type testTimerStore struct {
	suite.Suite
}

func (t *testTimerStore) TestParse() {
	b := []byte(`
public:
  id: shared
  reset: 2024-01-01T00:00:00Z
personal:
  - id: old
    reset: 2023-06-15T10:00:00Z
  - reset: 2024-08-20T12:30:45Z
`)

	st, err := ParseTimerStore(b)
	t.NoError(err)

	public := st.PublicRecord()
	t.NotNil(public)
	t.Equal("shared", public.ID)
	t.True(public.IsPublic)
	t.True(public.ResetInstant.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	personal := st.PersonalRecords()
	t.Equal(2, len(personal))
	t.Equal("old", personal[0].ID)
	t.False(personal[0].IsPublic)
	t.NotEmpty(personal[1].ID) // generated

	active := timer.SelectActive(public, personal)
	t.NotNil(active)
	t.Equal("shared", active.ID)
}

func (t *testTimerStore) TestParsePersonalOnly() {
	b := []byte(`
personal:
  - id: only
    reset: 2024-08-20T12:30:45Z
`)

	st, err := ParseTimerStore(b)
	t.NoError(err)
	t.Nil(st.PublicRecord())

	active := timer.SelectActive(st.PublicRecord(), st.PersonalRecords())
	t.NotNil(active)
	t.Equal("only", active.ID)
}

func (t *testTimerStore) TestParseEmpty() {
	st, err := ParseTimerStore([]byte("{}"))
	t.NoError(err)
	t.Nil(st.PublicRecord())
	t.Nil(st.PersonalRecords())
	t.Nil(timer.SelectActive(st.PublicRecord(), st.PersonalRecords()))
}

func (t *testTimerStore) TestMissingReset() {
	_, err := ParseTimerStore([]byte(`
public:
  id: shared
`))
	t.Error(err)

	_, err = ParseTimerStore([]byte(`
personal:
  - id: only
`))
	t.Error(err)
}

func (t *testTimerStore) TestInvalidYAML() {
	_, err := ParseTimerStore([]byte("{"))
	t.Error(err)
}

func TestTimerStore(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(testTimerStore))
}
