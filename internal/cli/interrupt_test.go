package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterruptHandler_Interrupt(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewInterruptHandler(out, "Export")
	assert.False(t, h.WasInterrupted())

	h.Interrupt()
	h.Interrupt()

	assert.True(t, h.WasInterrupted())
	assert.Equal(t, 1, strings.Count(out.String(), "Export interrupted!"))
}

func TestInterruptHandler_StopCancelsContext(t *testing.T) {
	h := NewInterruptHandler(nil, "Export")
	ctx, stop := h.HandleInterrupts(context.Background())

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled before stop")
	default:
	}

	stop()
	stop()
	<-ctx.Done()
	assert.False(t, h.WasInterrupted())
}
