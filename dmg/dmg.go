// Package dmg composes the Bus, Memory, and Cpu into the top-level power
// loop: the one piece of the system that is allowed to know about all three
// at once.
package dmg

import (
	"log"

	"dmgcore/bus"
	"dmgcore/cartridge"
	"dmgcore/cpu"
	"dmgcore/mem"
)

// A Dmg wires one Bus between one Memory and one Cpu and drives them in the
// strict CPU-then-Memory alternation the core requires.
type Dmg struct {
	Bus *bus.Bus
	Mem *mem.Memory
	Cpu *cpu.Cpu

	poweredOn bool
}

// New returns a freshly wired, not-yet-powered Dmg.
func New() *Dmg {
	b := &bus.Bus{}
	m := mem.New()
	return &Dmg{
		Bus: b,
		Mem: m,
		Cpu: cpu.New(b),
	}
}

// InsertCartridge loads a cartridge image from path into ram at 0x0000. A
// read failure is logged and left non-fatal: the Cpu is free to start and
// will simply execute zeroed RAM as a stream of NOPs.
func (d *Dmg) InsertCartridge(path string) error {
	data, err := cartridge.Load(path)
	if err != nil {
		return err
	}
	d.Mem.LoadROM(data)
	return nil
}

// PowerOn runs the tick loop until PowerOff is called, the Cpu stops on
// HALT/STOP, or the Cpu hits a fatal opcode. It returns the Cpu's fatal
// error, if any; a deliberate PowerOff or a HALT/STOP returns nil.
func (d *Dmg) PowerOn() error {
	d.poweredOn = true
	for d.poweredOn {
		if err := d.Cpu.Tick(); err != nil {
			d.poweredOn = false
			return err
		}
		d.Mem.Tick(d.Bus)

		if d.Cpu.Stopped() {
			d.poweredOn = false
		}
	}
	return nil
}

// PowerOff flips the power flag; the loop observes it between tick pairs
// and exits, per the core's single suspension point beyond HALT/STOP.
func (d *Dmg) PowerOff() {
	d.poweredOn = false
}

// LogFatal writes a fatal Cpu error the way the driver's error-handling
// design calls for: logged, not panicked.
func LogFatal(err error) {
	if err != nil {
		log.Printf("dmg: power loop exited: %v", err)
	}
}
