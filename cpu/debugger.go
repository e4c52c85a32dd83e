package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"dmgcore/mem"
)

// model drives a single-step TUI over a Cpu and the Memory backing its Bus.
type model struct {
	cpu *Cpu
	mem *mem.Memory

	offset uint16 // only for drawing pageTable
	prevPC uint16
	error  error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	return nil
}

// tick advances the Cpu and Memory by exactly one machine cycle each,
// mirroring the alternation a real driver performs.
func (m *model) tick() error {
	if err := m.cpu.Tick(); err != nil {
		return err
	}
	m.mem.Tick(m.cpu.Bus)
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.tick(); err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.mem.Peek(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.FlagZ(),
		m.cpu.FlagN(),
		m.cpu.FlagH(),
		m.cpu.FlagC(),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
 PC: %04x (%04x)
 SP: %04x
  A: %02x   F: %02x
  B: %02x   C: %02x
  D: %02x   E: %02x
  H: %02x   L: %02x
IME: %v
Z N H C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.SP,
		m.cpu.A(), m.cpu.F(),
		m.cpu.B(), m.cpu.C(),
		m.cpu.D(), m.cpu.E(),
		m.cpu.H(), m.cpu.L(),
		m.cpu.IME,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	base := m.cpu.PC &^ 0x0F
	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset),
		int(base),
		int(base + 16),
		int(base + 32),
		int(base + 48),
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	b := m.mem.Peek(m.cpu.PC)
	op := Opcodes[b]
	if b == 0xCB {
		op = CBOpcodes[m.mem.Peek(m.cpu.PC+1)]
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(op),
	)
}

// Debug starts an interactive single-step TUI over c, backed by mm for
// display. mm should already hold the loaded ROM and c should be freshly
// constructed via New before this is invoked.
func (c *Cpu) Debug(mm *mem.Memory, offset uint16) {
	m, err := tea.NewProgram(model{
		cpu:    c,
		mem:    mm,
		offset: offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
