package ui

import (
	"reflect"

	"github.com/atomicstack/ranked-carousel/internal/backend"
	"github.com/atomicstack/ranked-carousel/internal/carousel"
	"github.com/atomicstack/ranked-carousel/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/clockz"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configure a Model.
type Options struct {
	Loader     *backend.Loader
	Clock      clockz.Clock
	AssetRoot  string
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the ranked carousel.
type Model struct {
	ctrl   *carousel.Controller
	loader *backend.Loader

	// awaiting is the timer handle ID a wait command is outstanding for.
	awaiting uint64

	layout      layout
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	assetRoot   string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	closed      bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds an idle carousel; Init shows placeholders and issues the
// ranked list request.
func NewModel(opts Options) *Model {
	ctrlOpts := []carousel.Option{}
	if opts.Clock != nil {
		ctrlOpts = append(ctrlOpts, carousel.WithClock(opts.Clock))
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	if styles.Loading != nil {
		s.Style = *styles.Loading
	}
	m := &Model{
		ctrl:       carousel.NewController(ctrlOpts...),
		loader:     opts.Loader,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		assetRoot:  opts.AssetRoot,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.ctrl.ShowPlaceholders()
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loader != nil {
		m.loader.Start()
		cmds = append(cmds, waitForRankingEvent(m.loader))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Controller exposes the rotation state machine.
func (m *Model) Controller() *carousel.Controller {
	return m.ctrl
}

// Close tears the carousel down: the rotation timer is cancelled and any
// in-flight request is abandoned. Safe to call repeatedly.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.ctrl.Teardown()
	if m.loader != nil {
		m.loader.Stop()
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(rotationTickMsg{}):   m.handleRotationTickMsg,
		reflect.TypeOf(rankingEventMsg{}):   m.handleRankingEventMsg,
		reflect.TypeOf(rankingDoneMsg{}):    m.handleRankingDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate arms a wait command whenever the controller holds a timer
// handle nobody is waiting on yet.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if timer := m.ctrl.Timer(); timer != nil && timer.ID() != m.awaiting {
		m.awaiting = timer.ID()
		cmds = append(cmds, waitForRotation(timer))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
