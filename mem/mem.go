// Package mem implements the flat 64 KiB memory array that services the
// Bus's transactions one machine cycle at a time.
package mem

import (
	"io"
	"os"

	"dmgcore/bus"
)

const serialControl = 0xFF02
const serialData = 0xFF01
const serialTransferRequested = 0x81

// Memory is a flat byte array addressed by the full 16-bit space. It has no
// concept of banking, mirroring, or memory-mapped peripherals; the PPU,
// APU, timer, joypad, and interrupt controller registers this core doesn't
// model are simply ordinary cells in ram.
type Memory struct {
	ram [65536]byte

	// SerialOut receives the byte streamed by the conformance-ROM serial
	// side channel (writes of 0x81 to 0xFF02). Defaults to os.Stdout;
	// tests swap in a bytes.Buffer to capture the stream.
	SerialOut io.Writer
}

// New returns a zeroed Memory with SerialOut directed at os.Stdout, matching
// the driver's default wiring.
func New() *Memory {
	return &Memory{SerialOut: os.Stdout}
}

// Tick services whatever transaction the Bus currently carries: a pending
// write is copied into ram and the serial side channel is checked, or ram is
// copied onto the Bus's data latch for a read. Memory never fails; every
// address in the 64 KiB space is valid.
//
// The pending flag is cleared unconditionally at the end of every tick.
// Filling the latch on the read path marks it pending too, and leaving that
// set would turn the next tick into a spurious write of stale data.
func (m *Memory) Tick(b *bus.Bus) {
	addr := b.ReadAddr()

	if b.WritePending() {
		data := b.ReadData()
		if addr == serialControl && data == serialTransferRequested && m.SerialOut != nil {
			m.SerialOut.Write([]byte{m.ram[serialData]})
		}
		m.ram[addr] = data
	} else {
		b.WriteData(m.ram[addr])
	}

	b.ClearWritePending()
}

// Peek reads a byte directly, bypassing the Bus. Used by the debugger and
// by tests that need to inspect memory state without driving a tick.
func (m *Memory) Peek(addr uint16) byte {
	return m.ram[addr]
}

// Poke writes a byte directly, bypassing the Bus.
func (m *Memory) Poke(addr uint16, data byte) {
	m.ram[addr] = data
}

// LoadROM copies a cartridge image into ram starting at 0x0000. Images
// longer than 64 KiB are truncated; shorter images leave the remainder of
// ram zeroed.
func (m *Memory) LoadROM(data []byte) {
	copy(m.ram[:], data)
}
