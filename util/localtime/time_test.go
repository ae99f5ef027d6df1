package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type testTime struct {
	suite.Suite
}

func (t *testTime) TestNormalize() {
	tn := time.Now()

	n := Normalize(tn)

	t.Equal(time.UTC, n.Location())
	t.Equal((tn.Nanosecond()/1000000)*1000000, n.Nanosecond())
}

func (t *testTime) TestParseRFC3339() {
	tn, err := ParseRFC3339("2024-08-20T12:30:45Z")
	t.NoError(err)
	t.Equal(2024, tn.Year())

	_, err = ParseRFC3339("killme")
	t.Error(err)
}

func (t *testTime) TestRoundtrip() {
	tn := Normalize(time.Now())

	parsed, err := ParseRFC3339(RFC3339(tn))
	t.NoError(err)
	t.True(Equal(tn, parsed))
}

func (t *testTime) TestNowWithoutSyncer() {
	before := time.Now().Add(-time.Second)
	n := Now()
	after := time.Now().Add(time.Second)

	t.True(n.After(before))
	t.True(n.Before(after))
}

func TestTime(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(testTime))
}
