package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/debanjanofficial/netfolio/internal/search"
)

// Matcher is the search backend driven by the browse view.
type Matcher interface {
	Search(query string, lang i18n.Language) []search.Result
	Select(id string, nav search.Navigator) (bool, error)
}

// BrowseOptions configures Browse.
type BrowseOptions struct {
	Lang    i18n.Language
	T       func(key string) string
	NoColor bool
	Input   io.Reader
	Output  io.Writer
}

// Outcome reports how a browse session ended.
type Outcome struct {
	// Selected is the id of the opened result, empty when none was opened.
	Selected string
	// Opened is true when Selected resolved and the navigator was called.
	Opened bool
}

// Browse runs the interactive search until the user opens a result or
// quits. The chosen result is handed to nav after the terminal is restored.
func Browse(ctx context.Context, m Matcher, nav search.Navigator, opts BrowseOptions) (Outcome, error) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if !IsTTY(opts.Output) {
		return Outcome{}, ErrNotTTY
	}

	model := newBrowseModel(m, opts)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(opts.Input),
		tea.WithOutput(opts.Output),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("browse: %w", err)
	}

	bm, ok := final.(*browseModel)
	if !ok || bm.selected == "" {
		return Outcome{}, nil
	}
	opened, err := m.Select(bm.selected, nav)
	return Outcome{Selected: bm.selected, Opened: opened}, err
}

// browseModel is the bubbletea model for per-keystroke search.
type browseModel struct {
	matcher  Matcher
	lang     i18n.Language
	t        func(string) string
	styles   Styles
	input    textinput.Model
	query    string
	results  []search.Result
	cursor   int
	notFound string
	selected string
	quitting bool
}

func newBrowseModel(m Matcher, opts BrowseOptions) *browseModel {
	t := opts.T
	if t == nil {
		t = func(key string) string { return key }
	}

	ti := textinput.New()
	ti.Placeholder = t("search.placeholder")
	ti.Prompt = "⌕ "
	ti.CharLimit = 80
	ti.Width = 48
	ti.Focus()

	styles := GetStyles(opts.NoColor || DetectNoColor())
	ti.PromptStyle = styles.Prompt

	return &browseModel{
		matcher: m,
		lang:    opts.Lang,
		t:       t,
		styles:  styles,
		input:   ti,
		results: []search.Result{},
	}
}

// Init implements tea.Model.
func (m *browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.notFound != "" {
			return m.updateNotFound(msg)
		}
		return m.updateSearch(msg)

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w < 20 {
			w = 20
		}
		m.input.Width = w
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *browseModel) updateNotFound(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "backspace":
		m.notFound = ""
		m.input.SetValue("")
		m.refresh()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.results) > 0 {
			m.selected = m.results[m.cursor].ID
			m.quitting = true
			return m, tea.Quit
		}
		if q := strings.TrimSpace(m.query); q != "" {
			m.notFound = q
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.query {
		m.refresh()
	}
	return m, cmd
}

// refresh re-runs the query for the current input value.
func (m *browseModel) refresh() {
	m.query = m.input.Value()
	m.results = m.matcher.Search(m.query, m.lang)
	m.cursor = 0
}

// View implements tea.Model.
func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.notFound != "" {
		return m.viewNotFound()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("NETFOLIO"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for i, r := range m.results {
		cursor := "  "
		label := m.styles.Item.Render(r.Label)
		if i == m.cursor {
			cursor = m.styles.Prompt.Render("› ")
			label = m.styles.Selected.Render(r.Label)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, label, m.styles.Category.Render(r.Category))
	}
	if len(m.results) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • enter open • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *browseModel) viewNotFound() string {
	var b strings.Builder
	b.WriteString(m.styles.Warning.Render(m.t("search.noResultsTitle")))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n\n", m.t("search.noResultsDescription"), m.styles.Query.Render(m.notFound))
	b.WriteString(m.styles.Help.Render("← " + m.t("search.backHome")))
	b.WriteString("\n")
	return b.String()
}
