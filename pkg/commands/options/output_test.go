package options

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	t.Cleanup(func() { color.Output = prev })

	boom := errors.New("boom")

	plain := &OutputOptions{}
	assert.Same(t, boom, plain.HandleError(boom))
	assert.Nil(t, plain.HandleError(nil))
	assert.Empty(t, buf.String())

	js := &OutputOptions{JSON: true}
	err := js.HandleError(boom)
	assert.ErrorIs(t, err, ErrReported)
	assert.ErrorIs(t, err, boom)
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}
