package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/vimterm/internal/ui"
	"github.com/muurk/vimterm/pkg/input"
	"github.com/muurk/vimterm/pkg/terminal"
)

var keysViaBubbleTea bool

func init() {
	keysCmd.Flags().BoolVar(&keysViaBubbleTea, "bubbletea", false, "Read keys through Bubble Tea instead of the raw decoder")
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the event decoded for each key press",
	Long: `Put the terminal in raw mode and print the event each key press decodes
to, until q is pressed. Useful for checking what a terminal sends for the
arrow, Enter and Backspace keys.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if keysViaBubbleTea {
			return runKeysBubbleTea()
		}
		return runKeysRaw(terminal.Std())
	},
}

func runKeysRaw(t *terminal.Terminal) error {
	if err := requireTTY(t); err != nil {
		return err
	}

	raw := t.EnableRawMode()
	defer raw.Restore()
	stop := terminal.RestoreOnSignal(raw, exitOnSignal)
	defer stop()

	width, _ := t.Size()
	header := ui.NewHeader("Key Inspector", "Press keys to see their events, q to quit", width)
	if err := t.WriteString(terminal.ClearScreen + header.Render() + "\n"); err != nil {
		return err
	}

	return inspect(input.NewDecoder(t), t)
}

// inspect prints one line per decoded event until Quit or end of input.
func inspect(dec *input.Decoder, w io.Writer) error {
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if _, err := fmt.Fprintf(w, "  %s\n", describe(ev)); err != nil {
			return err
		}
		if ev.Kind == input.KindQuit {
			return nil
		}
	}
}

func describe(ev input.Event) string {
	if d, ok := ev.Direction(); ok {
		return fmt.Sprintf("%-10s %s", ev.Kind, d)
	}
	return ev.Kind.String()
}

// keysModel is the Bubble Tea flavour of the inspector. It shows that key
// messages map onto the same events as raw bytes do.
type keysModel struct {
	keys   input.KeyMap
	help   help.Model
	width  int
	events []string
}

const keysHistory = 15

func newKeysModel() keysModel {
	return keysModel{keys: input.DefaultKeyMap(), help: help.New()}
}

func (m keysModel) Init() tea.Cmd {
	return nil
}

func (m keysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		ev := m.keys.Event(msg)
		m.events = append(m.events, fmt.Sprintf("%-12q %s", msg.String(), describe(ev)))
		if len(m.events) > keysHistory {
			m.events = m.events[len(m.events)-keysHistory:]
		}
		if ev.Kind == input.KindQuit {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m keysModel) View() string {
	var b strings.Builder
	b.WriteString(ui.NewHeader("Key Inspector", "Bubble Tea key messages, q to quit", m.width).Render())
	b.WriteString("\n")
	for _, line := range m.events {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func runKeysBubbleTea() error {
	_, err := tea.NewProgram(newKeysModel()).Run()
	return err
}
