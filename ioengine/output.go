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

package ioengine

import (
	"time"

	"github.com/nabbar/guacd/client"
	"github.com/nabbar/guacd/status"
)

// nowMillis is overridable in tests so the output loop's timing can be
// exercised without sleeping for real SyncFrequency/MessageHandleFrequency
// durations.
var nowMillis = func() int64 { return time.Now().UnixMilli() }
var sleepFunc = time.Sleep

// OutputLoop periodically sends a sync heartbeat and, when the client has
// acknowledged recently enough, pulls a frame from the plugin's
// HandleMessages hook. It returns once the client stops.
func OutputLoop(c *client.Client, slot *status.Slot) {
	lastPing := nowMillis()

	for c.State() == client.Running {
		now := nowMillis()

		if now-lastPing > SyncFrequency.Milliseconds() {
			if err := c.Render.SendSync(c.LastSentTimestamp()); err != nil {
				slot.Set(status.Wrap(status.OutputError, err))
				c.Stop()
				return
			}
			lastPing = now
		}

		if c.Handlers.HandleMessages == nil {
			sleepFunc(SyncFrequency)
			continue
		}

		if c.LastSentTimestamp()-c.LastReceivedTimestamp() < SyncThreshold.Milliseconds() {
			if err := c.Handlers.HandleMessages(c); err != nil {
				slot.Set(status.Wrap(status.OutputError, err))
				c.Stop()
				return
			}
			sent := nowMillis()
			c.SetLastSentTimestamp(sent)
			if err := c.Render.SendSync(sent); err != nil {
				slot.Set(status.Wrap(status.OutputError, err))
				c.Stop()
				return
			}
		} else {
			sleepFunc(MessageHandleFrequency)
		}
	}

	c.Stop()
}
