package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"
)

// maxVisible is the number of matches shown below the input line.
const maxVisible = 12

// Styles.
//
//nolint:gochecknoglobals
var (
	browsePromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	browseKeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	browseMatchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	browseValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	browseSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("4"))
	browseHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Browse opens an interactive view over the property store with live
// fuzzy filtering. Selecting a key prints its resolved value and exits.
type Browse struct{}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	p, err := makeResolver(ctx)
	if err != nil {
		return err
	}

	input := textinput.New()
	input.Prompt = browsePromptStyle.Render("filter> ")
	input.Focus()

	model := browseModel{
		input:   input,
		resolve: func(key string) (string, error) { return p.Require(key) },
		keys:    p.Store().Keys(),
	}
	model.filter()

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	m, ok := final.(browseModel)
	if !ok || m.chosen == "" {
		return nil
	}

	value, err := m.resolve(m.chosen)
	if err != nil {
		return err
	}

	fmt.Printf("%s=%s\n", m.chosen, value)

	return nil
}

// browseModel is the bubbletea model for the browse command.
type browseModel struct {
	input   textinput.Model
	resolve func(key string) (string, error)
	keys    []string
	matches fuzzy.Matches
	cursor  int
	chosen  string
}

// Init implements tea.Model.
func (m browseModel) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}

		return m, nil

	case tea.KeyEnter:
		if m.cursor < len(m.matches) {
			m.chosen = m.matches[m.cursor].Str
		}

		return m, tea.Quit
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.filter()

	return m, cmd
}

// filter recomputes the fuzzy matches for the current input.
func (m *browseModel) filter() {
	query := m.input.Value()

	if query == "" {
		// No query: every key matches, in sorted order.
		m.matches = make(fuzzy.Matches, len(m.keys))
		for i, key := range m.keys {
			m.matches[i] = fuzzy.Match{Str: key, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.keys)
	}

	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m browseModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.input.View())
	sb.WriteByte('\n')

	visible := m.matches
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}

	for i, match := range visible {
		line := renderMatch(match, i == m.cursor)

		value, err := m.resolve(match.Str)
		if err == nil {
			line += " = " + browseValueStyle.Render(value)
		}

		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if len(m.matches) > maxVisible {
		sb.WriteString(browseHintStyle.Render(
			fmt.Sprintf("… %d more", len(m.matches)-maxVisible),
		))
		sb.WriteByte('\n')
	}

	sb.WriteString(browseHintStyle.Render(
		"enter: select  esc: quit",
	))
	sb.WriteByte('\n')

	return sb.String()
}

// renderMatch styles one key, highlighting the runes the query matched.
func renderMatch(match fuzzy.Match, selected bool) string {
	if selected {
		return browseSelectedStyle.Render(match.Str)
	}

	matched := make(map[int]struct{}, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = struct{}{}
	}

	var sb strings.Builder

	for i, r := range match.Str {
		if _, ok := matched[i]; ok {
			sb.WriteString(browseMatchStyle.Render(string(r)))
		} else {
			sb.WriteString(browseKeyStyle.Render(string(r)))
		}
	}

	return sb.String()
}
