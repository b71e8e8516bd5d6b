package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyraminx/internal/config"
	"github.com/vovakirdan/pyraminx/internal/core"
	"github.com/vovakirdan/pyraminx/internal/pyraminx"
	"github.com/vovakirdan/pyraminx/internal/solver"
	"github.com/vovakirdan/pyraminx/internal/storage"
)

// Play layout constants
const (
	frameW     = core.NetWidth + 6 // Net plus border and padding
	frameH     = core.NetHeight + 4
	minScreenH = frameH + 8 // Frame plus title and status lines
	footerH    = 2          // Rows kept free for the help bar
)

// PlayDeps holds the services the puzzle view uses.
// Store may be nil, in which case solves are not recorded.
type PlayDeps struct {
	Solver   *solver.Solver
	Store    *storage.Store
	Scramble config.ScrambleConfig
	Logger   *log.Logger
}

// PlayModel is the Bubble Tea model for the interactive puzzle.
type PlayModel struct {
	deps     PlayDeps
	config   core.RuntimeConfig
	rng      *rand.Rand
	screen   *core.Screen
	keys     PlayKeyMap
	help     help.Model
	puzzle   pyraminx.Puzzle
	steps    []pyraminx.Step // Everything done since the last reset
	gen      int             // Bumped on every change of the puzzle
	tipMode  bool
	solving  bool
	solution *solver.Solution
	status   string
	statusID int
	isError  bool
	quitting bool
}

// NewPlayModel creates the puzzle view, starting from a solved puzzle.
func NewPlayModel(deps PlayDeps, cfg core.RuntimeConfig) PlayModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		deps:   deps,
		config: cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		screen: core.NewScreen(core.Max(cfg.ScreenW, frameW), core.Max(cfg.ScreenH-footerH, minScreenH)),
		keys:   DefaultPlayKeyMap(),
		help:   h,
		puzzle: pyraminx.Solved(),
	}
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(core.Max(msg.Width, frameW), core.Max(msg.Height-footerH, minScreenH))
		m.help.Width = msg.Width
		return m, nil

	case solvedMsg:
		return m.handleSolved(msg)

	case clearStatusMsg:
		if int(msg) == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Turn), key.Matches(msg, m.keys.TurnBack):
		k := msg.String()
		axis, _ := pyraminx.ParseAxis(k[0])
		mv := pyraminx.Move{Axis: axis, Dir: pyraminx.DirPos}
		if strings.ToUpper(k) == k {
			mv.Dir = pyraminx.DirNeg
		}
		kind := pyraminx.StepTurn
		if m.tipMode {
			kind = pyraminx.StepTip
		}
		m.do(pyraminx.Step{Kind: kind, Move: mv})

	case key.Matches(msg, m.keys.Flip):
		axis := pyraminx.Axes[msg.String()[0]-'1']
		m.do(pyraminx.Step{Kind: pyraminx.StepFlip, Move: pyraminx.Move{Axis: axis, Dir: pyraminx.DirPos}})

	case key.Matches(msg, m.keys.TipMode):
		m.tipMode = !m.tipMode
		if m.tipMode {
			return m, m.setStatus("tip mode: letters twist tips only", false)
		}
		return m, m.setStatus("turn mode", false)

	case key.Matches(msg, m.keys.Scramble):
		m.reset()
		m.scrambleRandom()
		return m, m.setStatus("scrambled: "+pyraminx.FormatSteps(m.steps), false)

	case key.Matches(msg, m.keys.Undo):
		if len(m.steps) == 0 {
			return m, m.setStatus("nothing to undo", false)
		}
		last := m.steps[len(m.steps)-1]
		m.steps = m.steps[:len(m.steps)-1]
		m.puzzle.Do(last.Inverse())
		m.changed()

	case key.Matches(msg, m.keys.Reset):
		m.reset()

	case key.Matches(msg, m.keys.Solve):
		if m.solving {
			return m, nil
		}
		if m.deps.Solver == nil {
			return m, m.setStatus("no solver available", true)
		}
		m.solving = true
		m.solution = nil
		m.status = "solving..."
		m.isError = false
		return m, solveCmd(context.Background(), m.deps.Solver, m.puzzle, m.gen)

	case key.Matches(msg, m.keys.Apply):
		if m.solution == nil {
			return m, m.setStatus("press s to find a solution first", false)
		}
		sol := m.solution
		for _, mv := range sol.Body {
			m.do(pyraminx.Step{Kind: pyraminx.StepTurn, Move: mv})
		}
		for _, mv := range sol.Tips {
			m.do(pyraminx.Step{Kind: pyraminx.StepTip, Move: mv})
		}
		if m.puzzle.IsSolved() {
			return m, m.setStatus(fmt.Sprintf("solved in %d moves", sol.Len()), false)
		}
	}

	return m, nil
}

// handleSolved records a finished background solve.
func (m PlayModel) handleSolved(msg solvedMsg) (tea.Model, tea.Cmd) {
	m.solving = false
	if msg.gen != m.gen {
		// The puzzle moved on while the solver was busy
		return m, m.setStatus("puzzle changed, press s again", false)
	}

	rec := storage.SolveRecord{
		Scramble: pyraminx.FormatSteps(m.steps),
		Duration: msg.elapsed,
	}

	var cmd tea.Cmd
	switch {
	case msg.err != nil:
		m.deps.Logger.Error("solve failed", "error", msg.err)
		cmd = m.setStatus("cannot solve: "+msg.err.Error(), true)
	case msg.solution == nil:
		cmd = m.setStatus("no solution within search depth", true)
	default:
		m.solution = msg.solution
		rec.Found = true
		rec.Solution = msg.solution.String()
		cmd = m.setStatus(fmt.Sprintf("found %d moves in %s", msg.solution.Len(), msg.elapsed.Round(time.Millisecond)), false)
	}

	// Lookup failures say nothing about the scramble
	if m.deps.Store != nil && !errors.Is(msg.err, solver.ErrLookupUnavailable) {
		if _, err := m.deps.Store.SaveSolve(context.Background(), &rec); err != nil {
			m.deps.Logger.Warn("could not record solve", "error", err)
		}
	}
	return m, cmd
}

// do performs a step and records it.
func (m *PlayModel) do(s pyraminx.Step) {
	m.puzzle.Do(s)
	m.steps = append(m.steps, s)
	m.changed()
}

// changed invalidates anything computed for the previous state.
func (m *PlayModel) changed() {
	m.gen++
	m.solution = nil
}

// reset returns to a solved puzzle.
func (m *PlayModel) reset() {
	m.puzzle = pyraminx.Solved()
	m.steps = nil
	m.changed()
}

// scrambleRandom applies random steps according to the scramble settings.
func (m *PlayModel) scrambleRandom() {
	gens := pyraminx.Generators
	cfg := m.deps.Scramble
	for range cfg.Length {
		m.do(pyraminx.Step{Kind: pyraminx.StepTurn, Move: gens[m.rng.Intn(len(gens))]})
	}
	if cfg.Tips {
		for _, a := range pyraminx.Axes {
			if d := m.rng.Intn(3); d > 0 {
				dir := pyraminx.DirPos
				if d == 2 {
					dir = pyraminx.DirNeg
				}
				m.do(pyraminx.Step{Kind: pyraminx.StepTip, Move: pyraminx.Move{Axis: a, Dir: dir}})
			}
		}
	}
	if cfg.Flips {
		m.do(pyraminx.Step{Kind: pyraminx.StepFlip, Move: gens[m.rng.Intn(len(gens))]})
	}
}

// setStatus shows a status line that expires after statusTimeout.
func (m *PlayModel) setStatus(text string, isError bool) tea.Cmd {
	m.statusID++
	m.status = text
	m.isError = isError
	return clearStatusCmd(m.statusID)
}

// Puzzle returns the current puzzle state.
func (m PlayModel) Puzzle() pyraminx.Puzzle {
	return m.puzzle
}

// Solution returns the last solution found for the current state, if any.
func (m PlayModel) Solution() *solver.Solution {
	return m.solution
}

// Status returns the current status line.
func (m PlayModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	s.Clear()

	frame := s.Bounds().Centered(frameW, frameH)
	s.DrawTextCentered(frame.Y-2, "PYRAMINX")
	s.DrawBox(frame, core.ColorGray)
	core.DrawNet(s, frame.X+3, frame.Y+2, &m.puzzle, false)

	mode := "turn"
	if m.tipMode {
		mode = "tips"
	}
	info := fmt.Sprintf("moves %d  mode %s", len(m.steps), mode)
	if m.puzzle.IsSolved() {
		info += "  solved"
	}
	s.DrawTextCentered(frame.Bottom()+1, info)

	if m.solution != nil {
		text := "solution: " + m.solution.String()
		if m.solution.Len() == 0 {
			text = "solution: already solved"
		}
		x := core.Clamp((s.Width()-lipgloss.Width(text))/2, 0, s.Width()-1)
		s.DrawTextColored(x, frame.Bottom()+2, text, core.ColorGreen)
	}

	if m.status != "" {
		color := core.ColorWhite
		if m.isError {
			color = core.ColorRed
		}
		x := core.Clamp((s.Width()-lipgloss.Width(m.status))/2, 0, s.Width()-1)
		s.DrawTextColored(x, frame.Bottom()+3, m.status, color)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(s) + "\n" + centerText(helpStyle.Render(m.help.View(m.keys)), s.Width())
}

// Run starts the interactive puzzle in the current terminal.
func Run(deps PlayDeps, cfg core.RuntimeConfig) error {
	model := NewPlayModel(deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
