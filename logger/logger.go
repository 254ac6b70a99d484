/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package logger adapts logrus into the small, level-controlled,
// multi-destination logger the daemon threads through every other
// package: one entry point that can fan out to stderr, an appended log
// file, and syslog at the same time, each with its own minimum level.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level is the daemon's own level enumeration, decoupled from logrus's
// so callers never need to import logrus directly just to set one.
type Level uint8

const (
	LevelPanic Level = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) toLogrus() logrus.Level {
	switch l {
	case LevelPanic:
		return logrus.PanicLevel
	case LevelFatal:
		return logrus.FatalLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// Logger is the interface every other package logs through. It wraps
// io.Writer so it can also be handed to stdlib APIs (net/http servers,
// the TCP listener's info callbacks) that expect a plain writer.
type Logger interface {
	io.Writer

	SetLevel(lvl Level)
	GetLevel() Level

	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// AddHook registers an additional logrus hook (a file or syslog
	// destination); if the hook also implements io.Closer, Close
	// releases it too.
	AddHook(h logrus.Hook)

	// Close releases every hook's underlying resource (open files,
	// syslog connections).
	Close() error
}

type entry struct {
	mu   *sync.Mutex
	base *logrus.Logger
	e    *logrus.Entry
	hooks []io.Closer
}

// New returns a Logger writing to stderr at lvl, with no additional
// hooks installed; pass NewFileHook or NewSyslogHook to AddHook to add
// destinations.
func New(lvl Level) Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(lvl.toLogrus())
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &entry{
		mu:   &sync.Mutex{},
		base: base,
		e:    logrus.NewEntry(base),
	}
}

func (l *entry) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base.SetLevel(lvl.toLogrus())
}

func (l *entry) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.base.GetLevel() {
	case logrus.PanicLevel:
		return LevelPanic
	case logrus.FatalLevel:
		return LevelFatal
	case logrus.ErrorLevel:
		return LevelError
	case logrus.WarnLevel:
		return LevelWarn
	case logrus.InfoLevel:
		return LevelInfo
	default:
		return LevelDebug
	}
}

func (l *entry) WithField(key string, value any) Logger {
	return &entry{mu: l.mu, base: l.base, e: l.e.WithField(key, value)}
}

func (l *entry) WithFields(fields map[string]any) Logger {
	return &entry{mu: l.mu, base: l.base, e: l.e.WithFields(logrus.Fields(fields))}
}

func (l *entry) Debug(args ...any) { l.e.Debug(args...) }
func (l *entry) Info(args ...any)  { l.e.Info(args...) }
func (l *entry) Warn(args ...any)  { l.e.Warn(args...) }
func (l *entry) Error(args ...any) { l.e.Error(args...) }

func (l *entry) Debugf(format string, args ...any) { l.e.Debugf(format, args...) }
func (l *entry) Infof(format string, args ...any)  { l.e.Infof(format, args...) }
func (l *entry) Warnf(format string, args ...any)  { l.e.Warnf(format, args...) }
func (l *entry) Errorf(format string, args ...any) { l.e.Errorf(format, args...) }

// Write satisfies io.Writer so a Logger can be handed to anything that
// wants a plain sink (a net.Conn info callback, a standard log.Logger).
func (l *entry) Write(p []byte) (int, error) {
	l.e.Info(string(p))
	return len(p), nil
}

func (l *entry) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, h := range l.hooks {
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// AddHook registers a logrus hook (and, if it also implements io.Closer,
// arranges for Close to release it).
func (l *entry) AddHook(h logrus.Hook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base.AddHook(h)
	if c, ok := h.(io.Closer); ok {
		l.hooks = append(l.hooks, c)
	}
}

var _ fmt.Stringer = Level(0)

func (l Level) String() string {
	return l.toLogrus().String()
}
