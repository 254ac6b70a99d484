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

package wol

import (
	"bytes"
	"net"
	"testing"
)

func TestMagicPacket_StartsWithSixFFBytes(t *testing.T) {
	mac, _ := net.ParseMAC("01:02:03:04:05:06")
	packet := magicPacket(mac)

	if len(packet) != PacketSize {
		t.Fatalf("expected %d bytes, got %d", PacketSize, len(packet))
	}
	if !bytes.Equal(packet[:6], []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("expected leading 6 bytes of 0xFF, got %x", packet[:6])
	}
}

func TestMagicPacket_RepeatsMAC16Times(t *testing.T) {
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	packet := magicPacket(mac)

	for i := 1; i <= 16; i++ {
		if !bytes.Equal(packet[i*6:i*6+6], mac) {
			t.Fatalf("repetition %d did not match mac address", i)
		}
	}
}

func TestWake_RejectsInvalidMAC(t *testing.T) {
	if err := Wake("not-a-mac", LocalIPv4Broadcast); err == nil {
		t.Fatalf("expected an error for an invalid mac address")
	}
}
