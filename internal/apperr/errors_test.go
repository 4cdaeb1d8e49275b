package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnprocessableKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Unprocessable("list questions", cause)

	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "list questions: unprocessable: connection reset", err.Error())
}

func TestUnprocessableWithoutCause(t *testing.T) {
	err := Unprocessable("quiz body", nil)
	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.Equal(t, "quiz body: unprocessable", err.Error())
}

func TestNotFound(t *testing.T) {
	err := NotFound("delete question")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "delete question: resource not found", err.Error())
}
