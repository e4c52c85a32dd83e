// Package cartridge loads a raw cartridge image from the filesystem. It
// knows nothing about headers or bank switching; it only supplies bytes to
// whoever populates memory.
package cartridge

import (
	"log"
	"os"
)

// MaxSize is the largest cartridge image the core's 64 KiB address space can
// hold. Longer files are truncated, never rejected.
const MaxSize = 65536

// Load reads the cartridge image at path, truncated to MaxSize bytes. A
// read failure is logged and reported; the caller decides whether to
// continue with empty RAM, which executes as a stream of NOPs.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("cartridge: could not open %q for reading: %v", path, err)
		return nil, err
	}
	if len(data) > MaxSize {
		data = data[:MaxSize]
	}
	return data, nil
}
