package infra

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const maxStackDepth = 32

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) fileLine() (string, int) {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFile", 0
	}
	return fn.FileLine(pc)
}

func (frame Frame) name() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - equivalent to %s:%d
// %+v - <function-name> <full path>:<line>
func (frame Frame) Format(s fmt.State, verb rune) {
	file, line := frame.fileLine()
	switch verb {
	case 's':
		_, _ = io.WriteString(s, path.Base(file))
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		if s.Flag('+') {
			text, _ := frame.MarshalText()
			_, _ = s.Write(text)
			return
		}
		_, _ = io.WriteString(s, path.Base(file))
		_, _ = io.WriteString(s, ":")
		_, _ = io.WriteString(s, strconv.Itoa(line))
	}
}

func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	file, line := frame.fileLine()
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(file)
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(line))
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

// ErrorStack is an error that remembers where it was created.
// It can be inlined into a zap entry, so the frames are
// logged as a structured array instead of a plain text blob.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Unwrap() error
	Frames() []Frame
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	msg    string
	cause  error
	frames []Frame
}

func (es *errorStack) Error() string {
	switch {
	case es.cause == nil:
		return es.msg
	case es.msg == "":
		return es.cause.Error()
	}
	return es.msg + ": " + es.cause.Error()
}

func (es *errorStack) Unwrap() error {
	return es.cause
}

func (es *errorStack) Frames() []Frame {
	return es.frames
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	return enc.AddArray("errorStack", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, frame := range es.frames {
			arr.AppendString(fmt.Sprintf("%+v", frame))
		}
		return nil
	}))
}

func callers(skip int) []Frame {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Frame(pcs[i]))
	}
	return frames
}

func NewErrorStack(msg string) ErrorStack {
	return &errorStack{
		msg:    msg,
		frames: callers(3),
	}
}

// WrapErrorStack keeps the frames of err if it is an ErrorStack already.
func WrapErrorStack(err error) ErrorStack {
	if err == nil {
		return nil
	}
	var es ErrorStack
	if errors.As(err, &es) {
		return &errorStack{cause: err, frames: es.Frames()}
	}
	return &errorStack{cause: err, frames: callers(3)}
}

func WrapErrorStackWithMessage(err error, msg string) ErrorStack {
	if err == nil {
		return nil
	}
	return &errorStack{
		msg:    msg,
		cause:  err,
		frames: callers(3),
	}
}
