// Package bus implements the shared address/data register file that
// couples the Cpu to Memory, one transaction per machine cycle.
package bus

// A Bus is the central object connecting the Cpu and Memory. Unlike a real
// address/data bus it carries no wiring of its own; it is just the shared
// register pair the two sides poll and post to once per machine cycle.
//
// No validation is performed anywhere in this package: every 16-bit address
// and 8-bit data value is legal, and the Bus has no failure modes.
type Bus struct {
	addr         uint16
	data         byte
	writePending bool // true iff the Cpu posted a write the Memory hasn't consumed yet
}

// ReadData returns the current data latch.
func (b *Bus) ReadData() byte {
	return b.data
}

// WriteData posts data to the latch and marks the transaction as a write.
// Memory must consume it (via WritePending/ClearWritePending) before the
// next machine cycle, or the write is lost.
func (b *Bus) WriteData(data byte) {
	b.data = data
	b.writePending = true
}

// ReadAddr returns the current address latch.
func (b *Bus) ReadAddr() uint16 {
	return b.addr
}

// WriteAddr posts an address to the latch. The Cpu calls this before every
// read or write that Memory is expected to service on the following tick.
func (b *Bus) WriteAddr(addr uint16) {
	b.addr = addr
}

// WritePending reports whether the Cpu has posted a write that Memory has
// not yet serviced.
func (b *Bus) WritePending() bool {
	return b.writePending
}

// ClearWritePending marks the current write as consumed. Memory calls this
// after copying the data latch into its backing array.
func (b *Bus) ClearWritePending() {
	b.writePending = false
}
