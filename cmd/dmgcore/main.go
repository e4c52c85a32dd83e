// Command dmgcore powers on a Dmg core against a cartridge image, running
// until the Cpu halts, hits a fatal opcode, or the process receives an
// interrupt signal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"dmgcore/dmg"
)

const defaultROM = "roms/test-loop.gb"

func main() {
	dump := flag.Bool("dump", false, "pretty-print the populated memory region after loading the cartridge")
	debug := flag.Bool("debug", false, "launch the interactive single-step TUI instead of free-running")
	flag.Parse()

	path := defaultROM
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	d := dmg.New()
	if err := d.InsertCartridge(path); err != nil {
		log.Printf("dmgcore: %v, starting with empty RAM", err)
	}

	if *dump {
		spew.Dump(d.Mem)
	}

	if *debug {
		d.Cpu.Debug(d.Mem, 0)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var g errgroup.Group
	g.Go(func() error {
		// stop unblocks the signal watcher when the loop exits on its own
		// (HALT/STOP or a fatal opcode) rather than via SIGINT
		defer stop()
		return d.PowerOn()
	})
	g.Go(func() error {
		<-ctx.Done()
		d.PowerOff()
		return nil
	})

	if err := g.Wait(); err != nil {
		dmg.LogFatal(err)
		os.Exit(1)
	}

	log.Println("Goodbye!")
}
