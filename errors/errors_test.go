package errors

import (
	"testing"

	"github.com/eaugeas/rbtree/logs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorDescription(t *testing.T) {
	err := New(7, "node %d is red", 3)

	assert.Equal(t, "node 3 is red", err.Error())
	assert.Equal(t, 7, err.ErrorCode)
}

func TestErrorLog(t *testing.T) {
	fields := logs.MapFields{}
	New(7, "broken").Log(fields)

	assert.Equal(t, logs.MapFields{"error_code": 7, "description": "broken"}, fields)
}

func TestCodeWrapped(t *testing.T) {
	err := errors.Wrap(New(12, "broken"), "trial 3")

	assert.Equal(t, 12, Code(err))
	assert.Equal(t, 0, Code(errors.New("plain")))
	assert.Equal(t, 0, Code(nil))
}
