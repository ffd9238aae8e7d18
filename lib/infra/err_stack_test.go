package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
		{Frame(0), "%+v", "unknownFrame"},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.Frame))
	}
	require.True(t, strings.HasPrefix(fmt.Sprintf("%v", initPC), "err_stack_test.go:"))
	require.True(t, strings.HasPrefix(fmt.Sprintf("%+v", initPC), "github.com/benz9527/xlinked/lib/infra.init "))
}

func TestFrameMarshalText(t *testing.T) {
	text, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))

	text, err = initPC.MarshalText()
	require.NoError(t, err)
	require.Contains(t, string(text), "err_stack_test.go:")
}

func TestNewErrorStack(t *testing.T) {
	es := NewErrorStack("cycle detected")
	require.Equal(t, "cycle detected", es.Error())
	require.Nil(t, es.Unwrap())
	require.NotEmpty(t, es.Frames())
	require.Equal(t, "TestNewErrorStack", funcName(es.Frames()[0].name()))
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	require.Nil(t, WrapErrorStackWithMessage(nil, "ignored"))
	require.Nil(t, WrapErrorStack(nil))

	base := errors.New("short write")
	es := WrapErrorStackWithMessage(base, "print list")
	require.Equal(t, "print list: short write", es.Error())
	require.ErrorIs(t, es, base)

	sentinel := NewErrorStack("sentinel")
	wrapped := WrapErrorStack(sentinel)
	require.Equal(t, "sentinel", wrapped.Error())
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, sentinel.Frames(), wrapped.Frames())
}

func TestErrorStack_MarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	err := NewErrorStack("marshal me").MarshalLogObject(enc)
	require.NoError(t, err)
	require.Equal(t, "marshal me", enc.Fields["error"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "TestErrorStack_MarshalLogObject")
}
