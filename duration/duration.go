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

// Package duration adapts a days-aware time.Duration used in configuration
// values (idle-connection timeout, sync/heartbeat intervals) so operators
// can write "1d2h" in a YAML config file instead of doing the arithmetic
// into nanoseconds themselves.
package duration

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Duration wraps time.Duration, extending its text form with a leading
// "Nd" days component. It is limited to time.Duration's own range.
type Duration time.Duration

// Parse parses s as a duration, accepting an optional leading "Nd" before
// the stdlib time.ParseDuration grammar, e.g. "1d2h3m4s".
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)

	if idx := strings.IndexByte(s, 'd'); idx > 0 {
		daysPart := s[:idx]
		if isAllDigits(daysPart) {
			var days int64
			if _, err := fmt.Sscanf(daysPart, "%d", &days); err != nil {
				return 0, fmt.Errorf("duration: invalid days component %q: %w", daysPart, err)
			}
			rest := s[idx+1:]
			var td time.Duration
			if rest != "" {
				v, err := time.ParseDuration(rest)
				if err != nil {
					return 0, fmt.Errorf("duration: invalid remainder %q: %w", rest, err)
				}
				td = v
			}
			return Duration(time.Duration(days)*24*time.Hour + td), nil
		}
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return Duration(v), nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MustParse is like Parse but panics on error; intended for literal
// constants known at compile time.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the time.Duration equivalent.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

// Days returns the number of whole days in the duration.
func (d Duration) Days() int64 {
	t := math.Floor(d.Time().Hours() / 24)
	if t > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(t)
}

// String renders the duration as "NdNhNmNs", omitting the days component
// when it is zero.
func (d Duration) String() string {
	n := d.Days()
	i := d.Time()

	var s string
	if n > 0 {
		i -= time.Duration(n) * 24 * time.Hour
		s = fmt.Sprintf("%dd", n)
	}
	if n < 1 || i > 0 {
		s += i.String()
	}
	return s
}
