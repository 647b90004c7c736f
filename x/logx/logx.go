// Package logx writes short tagged log lines without fmt, so the same calls
// work on host builds and on MCU targets.
//
//	logx.Info("pwm", "configured", logx.Uint("period", 2000))
//	// INFO [pwm] configured period=2000
package logx

import (
	"io"
	"os"
	"strconv"
	"sync"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

var (
	mu sync.Mutex
	// Output receives every line. Platforms may point it at a UART.
	Output io.Writer = os.Stdout
	// MinLevel drops lines below this level.
	MinLevel = LevelInfo
)

// SetOutput swaps the sink and returns the previous one.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := Output
	Output = w
	return prev
}

// Field is one pre-rendered key=value pair.
type Field struct {
	Key string
	Val string
}

func Str(k, v string) Field           { return Field{k, v} }
func Int(k string, v int) Field       { return Field{k, strconv.Itoa(v)} }
func Uint(k string, v uint32) Field   { return Field{k, strconv.FormatUint(uint64(v), 10)} }
func Bool(k string, v bool) Field     { return Field{k, strconv.FormatBool(v)} }
func Float(k string, v float32) Field { return Field{k, strconv.FormatFloat(float64(v), 'f', 3, 32)} }

func Err(err error) Field {
	if err == nil {
		return Field{"err", "<nil>"}
	}
	return Field{"err", err.Error()}
}

func Debug(tag, msg string, fields ...Field) { write(LevelDebug, tag, msg, fields) }
func Info(tag, msg string, fields ...Field)  { write(LevelInfo, tag, msg, fields) }
func Warn(tag, msg string, fields ...Field)  { write(LevelWarn, tag, msg, fields) }
func Error(tag, msg string, fields ...Field) { write(LevelError, tag, msg, fields) }

func write(lvl Level, tag, msg string, fields []Field) {
	mu.Lock()
	defer mu.Unlock()
	if lvl < MinLevel || Output == nil {
		return
	}
	buf := make([]byte, 0, 64)
	buf = append(buf, lvl.String()...)
	if tag != "" {
		buf = append(buf, " ["...)
		buf = append(buf, tag...)
		buf = append(buf, ']')
	}
	buf = append(buf, ' ')
	buf = append(buf, msg...)
	for _, f := range fields {
		buf = append(buf, ' ')
		buf = append(buf, f.Key...)
		buf = append(buf, '=')
		buf = append(buf, f.Val...)
	}
	buf = append(buf, '\n')
	_, _ = Output.Write(buf)
}
