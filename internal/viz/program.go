package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bubblescape/internal/config"
	"github.com/san-kum/bubblescape/internal/scene"
)

// statusLines is the number of terminal rows reserved below the canvas.
const statusLines = 1

type TickMsg time.Time

// Model is the Bubble Tea model hosting a scene in the terminal.
type Model struct {
	term    *Terminal
	driver  *scene.Driver
	fps     int
	styles  styles
	started bool
	err     error
}

// NewModel prepares a terminal host; the scene starts on the first
// window size message.
func NewModel(cfg *config.Config, rng scene.Rand, opts scene.Options) (Model, error) {
	theme, err := GetTheme(cfg.Terminal.Theme)
	if err != nil {
		return Model{}, err
	}
	term := NewTerminal(0, 0)
	driver, err := scene.NewDriver(term, rng, opts)
	if err != nil {
		return Model{}, err
	}
	return Model{
		term:   term,
		driver: driver,
		fps:    cfg.Terminal.FPS,
		styles: newStyles(theme),
	}, nil
}

func (m Model) Driver() *scene.Driver { return m.driver }

// Err is the startup error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update routes terminal input to the scene and runs frames on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.term.SetContentArea(msg.Width, msg.Height-statusLines)
		if !m.started {
			if err := m.driver.Start(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.started = true
		} else {
			m.term.Resize(m.term.ContentArea())
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			// right clicks are often taken by the terminal emulator
			w, h := m.term.Size()
			m.term.ContextMenu(w/2, h/2)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || !m.started {
			return m, nil
		}
		x, y := CellToPoint(msg.X, msg.Y)
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.term.Click(x, y)
		case tea.MouseButtonRight:
			m.term.ContextMenu(x, y)
		}
	case TickMsg:
		m.term.RunFrame()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if !m.started {
		return "starting..."
	}
	st := m.styles
	bg := m.driver.Background()
	status := strings.Join([]string{
		st.field("bubbles", fmt.Sprint(m.driver.Bubbles().Len())),
		st.field("color", bg.Color().CSS()) + " " + swatch(bg.Color()),
		st.field("target", bg.Target().CSS()) + " " + swatch(bg.Target()),
		st.field("frame", fmt.Sprint(m.driver.Frames())),
		st.help.Render("click: pop/spawn  right/r: recolor  q: quit"),
	}, "  ")
	return m.term.View() + "\n" + st.status.Render(status)
}

// Run animates the scene in the terminal until the user quits.
func Run(cfg *config.Config, rng scene.Rand, opts scene.Options) error {
	m, err := NewModel(cfg, rng, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
