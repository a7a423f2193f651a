package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carousel/internal/core"
)

// model is the state of the slide preview. Navigation is left/right through
// the slide-set; the frame mimics the platform's aspect.
type model struct {
	slides   []core.Slide
	platform core.Platform
	current  int
	width    int
	height   int
	quitting bool
}

func initialModel(slides []core.Slide, platform core.Platform) model {
	return model{slides: slides, platform: platform}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.current > 0 {
				m.current--
			}
		case "right", "l", " ":
			if m.current < len(m.slides)-1 {
				m.current++
			}
		}
	}

	return m, nil
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Width(52)
	typeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.slides) == 0 {
		return dimStyle.Render("No slides to preview.\n")
	}

	slide := m.slides[m.current]
	size := m.platform.Size()

	header := typeStyle.Render(strings.ToUpper(string(slide.Type))) +
		dimStyle.Render(fmt.Sprintf("  %d/%d  %s %dx%d", slide.Order, len(m.slides), m.platform, size.Width, size.Height))

	body := slide.Content
	if slide.SelectedEmoji != "" {
		body = slide.SelectedEmoji + " " + body
	}

	var suggestions string
	if len(slide.SuggestedEmojis) > 0 {
		parts := make([]string, len(slide.SuggestedEmojis))
		for i, s := range slide.SuggestedEmojis {
			parts[i] = fmt.Sprintf("%s %s", s.Emoji, s.Reason)
		}
		suggestions = dimStyle.Render("Suggested: " + strings.Join(parts, " · "))
	}

	frame := frameStyle.Render(body)
	help := dimStyle.Render("[←/→] Navigate | [q] Quit")

	return lipgloss.NewStyle().Margin(1, 2).Render(
		header + "\n\n" + frame + "\n" + suggestions + "\n\n" + help + "\n",
	)
}

// StartPreview opens an interactive slide preview for the slide-set.
func StartPreview(slides []core.Slide, platform core.Platform) error {
	p := tea.NewProgram(initialModel(slides, platform), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
