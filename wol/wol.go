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

// Package wol sends the magic Wake-on-LAN packet used to rouse an upstream
// desktop before a plugin attempts to connect to it.
package wol

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Port is the destination port conventionally used for magic packets; it
// is rarely inspected by the receiving NIC but sending to it is
// standard practice.
const Port = 9

// PacketSize is 6 bytes of 0xFF followed by the target MAC repeated 16
// times.
const PacketSize = 102

// LocalIPv4Broadcast is the address used when the caller has no more
// specific broadcast address for the target's subnet.
const LocalIPv4Broadcast = "255.255.255.255"

// Wake builds the magic packet for macAddr and sends it via UDP to
// broadcastAddr. A successful return means the packet was transmitted,
// not that the target actually woke up.
func Wake(macAddr, broadcastAddr string) error {
	mac, err := net.ParseMAC(macAddr)
	if err != nil {
		return fmt.Errorf("wol: invalid mac address %q: %w", macAddr, err)
	}
	if len(mac) != 6 {
		return fmt.Errorf("wol: mac address %q is not 6 bytes", macAddr)
	}

	packet := magicPacket(mac)

	lc := net.ListenConfig{Control: setBroadcast}
	pc, err := lc.ListenPacket(context.Background(), "udp4", ":0")
	if err != nil {
		return fmt.Errorf("wol: open broadcast socket: %w", err)
	}
	defer pc.Close()

	dst, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(broadcastAddr, fmt.Sprint(Port)))
	if err != nil {
		return fmt.Errorf("wol: resolve broadcast address: %w", err)
	}

	n, err := pc.WriteTo(packet, dst)
	if err != nil {
		return fmt.Errorf("wol: send magic packet: %w", err)
	}
	if n != PacketSize {
		return fmt.Errorf("wol: short write sending magic packet (%d of %d bytes)", n, PacketSize)
	}
	return nil
}

// setBroadcast enables SO_BROADCAST on the raw socket before it is bound,
// since sending a UDP datagram to a broadcast address otherwise fails
// with a permission error.
func setBroadcast(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}

func magicPacket(mac net.HardwareAddr) []byte {
	packet := make([]byte, PacketSize)
	for i := 0; i < 6; i++ {
		packet[i] = 0xFF
	}
	for i := 1; i <= 16; i++ {
		copy(packet[i*6:], mac)
	}
	return packet
}
