package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := DataLoad("missing column %q", "year")
	err := Wrap(inner, "load poverty.csv")

	assert.Equal(t, CodeDataLoad, GetCode(err))
	assert.Equal(t, `load poverty.csv: missing column "year"`, err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestWrapPlainError(t *testing.T) {
	cause := errors.New("boom")
	err := Wrapf(cause, "callback %s", "summary")

	assert.Equal(t, CodeInternal, GetCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(errors.New("plain")))
	assert.Equal(t, CodeNotFound, GetCode(WithCode(CodeNotFound, errors.New("x"))))
}

func TestWithCodeKeepsMessage(t *testing.T) {
	cause := errors.New("open data/nope.csv: no such file or directory")
	err := WithCode(CodeDataLoad, cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "data/nope.csv: parse: "+cause.Error(), Wrapf(err, "%s: parse", "data/nope.csv").Error())
}
