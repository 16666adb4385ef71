// Package tui implements the interactive chat screen of the dashboard.
package tui

import (
	"context"
	"strings"

	"github.com/Veraticus/lifedash/internal/dashboard"
	"github.com/Veraticus/lifedash/internal/dispatch"
	"github.com/Veraticus/lifedash/internal/intent"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/Veraticus/lifedash/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const backToDashboard = "Back to the dashboard. What would you like to do next?"

// Model holds the chat screen state. The store and dispatcher are shared
// with the caller and outlive the program.
type Model struct {
	ctx        context.Context
	classifier Classifier
	store      *dashboard.Store
	dispatcher *dispatch.Dispatcher
	lastIntent *model.Intent
	theme      themes.Theme
	config     Config
	keymap     KeyMap
	input      textinput.Model
	help       help.Model
	width      int
	height     int
	busy       bool
	quitting   bool
}

// NewModel creates the chat screen model.
func NewModel(ctx context.Context, c Classifier, store *dashboard.Store, d *dispatch.Dispatcher, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	input := textinput.New()
	input.Placeholder = "Ask me anything... e.g. \"plan my DSA study for 2 hours\""
	input.Prompt = "› "
	input.CharLimit = 500
	input.Width = max(cfg.Width-4, 10)
	input.Focus()

	return Model{
		ctx:        ctx,
		classifier: c,
		store:      store,
		dispatcher: d,
		theme:      cfg.Theme,
		config:     cfg,
		keymap:     DefaultKeyMap(),
		input:      input,
		help:       help.New(),
		width:      cfg.Width,
		height:     cfg.Height,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.help.Width = msg.Width
		return m, nil

	case classifiedMsg:
		m.busy = false
		m.handleIntent(msg.intent)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.store.ClearMessages()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.Send):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the user's line and starts classification. Input is
// ignored while a classification is in flight.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.busy {
		return nil
	}

	m.input.Reset()
	m.store.AddMessage(model.RoleUser, text, nil)
	m.busy = true
	return classifyCmd(m.ctx, m.classifier, text)
}

func (m *Model) handleIntent(in model.Intent) {
	m.dispatcher.Apply(in)
	module := in.Module
	m.store.AddMessage(model.RoleAssistant, intent.Respond(in), &module)
	m.lastIntent = &in
}

func (m *Model) reset() {
	m.dispatcher.Reset()
	m.lastIntent = nil
	welcome := model.Welcome
	m.store.AddMessage(model.RoleSystem, backToDashboard, &welcome)
}

// ActiveModule returns the module whose panel is showing.
func (m Model) ActiveModule() model.Module {
	return m.dispatcher.Current()
}
