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

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// fileHook writes formatted log entries to an append-only file, filtered
// to a minimum level independent of the base logger's own level.
type fileHook struct {
	f   *os.File
	lvl logrus.Level
	fmt logrus.Formatter
}

// NewFileHook opens path for appending (creating it if necessary) and
// returns a hook that writes every entry at lvl or more severe to it.
func NewFileHook(path string, lvl Level) (logrus.Hook, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, err
	}
	return &fileHook{f: f, lvl: lvl.toLogrus(), fmt: &logrus.TextFormatter{FullTimestamp: true}}, nil
}

func (h *fileHook) Levels() []logrus.Level {
	var lvls []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= h.lvl {
			lvls = append(lvls, l)
		}
	}
	return lvls
}

func (h *fileHook) Fire(e *logrus.Entry) error {
	b, err := h.fmt.Format(e)
	if err != nil {
		return err
	}
	_, err = h.f.Write(b)
	return err
}

func (h *fileHook) Close() error {
	return h.f.Close()
}
