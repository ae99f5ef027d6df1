package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type testNError struct {
	suite.Suite
}

func (t *testNError) TestIs() {
	e0 := NewError("showme")

	t.Equal("showme", e0.Error())

	t.True(errors.Is(e0, e0))
	t.True(errors.Is(NewError("showme"), e0))
	t.False(errors.Is(NewError("findme"), e0))
}

func (t *testNError) TestWrap() {
	e0 := NewError("showme")

	inner := errors.Errorf("killme")
	e1 := e0.Wrap(inner)

	t.True(errors.Is(e1, e0))
	t.True(errors.Is(e1, inner))
}

func (t *testNError) TestErrorf() {
	e0 := NewError("showme")
	e1 := e0.Errorf("findme: %d", 3)

	t.True(errors.Is(e1, e0))
	t.Contains(e1.Error(), "findme: 3")
}

func TestNError(t *testing.T) {
	suite.Run(t, new(testNError))
}
