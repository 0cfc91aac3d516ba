package detection

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pipegen/pkg/detector"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

type model struct {
	detection detector.Detection
	confirmed bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Framework Detection Results"))
	s.WriteString("\n\n")

	frameworkBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(60)

	s.WriteString(frameworkBox.Render(detectionSummary(m.detection)))
	s.WriteString("\n\n")

	s.WriteString(focusedStyle.Render("Generate CI/CD files for this project?"))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render("y"))
	s.WriteString(helpStyle.Render(" to generate, "))
	s.WriteString(focusedStyle.Render("n"))
	s.WriteString(helpStyle.Render(" to skip, or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

func detectionSummary(det detector.Detection) string {
	var content strings.Builder

	row := func(label, value string) {
		if value == "" {
			return
		}
		content.WriteString(focusedStyle.Render(label + ": "))
		content.WriteString(selectedItemStyle.Render(value))
		content.WriteString("\n")
	}

	row("Framework", string(det.Framework))
	row("Language", det.Language)
	row("Version", det.LanguageVersion)
	row("Package manager", det.PackageManager)
	row("Test framework", det.TestFramework)
	row("Web framework", det.WebFramework)

	if len(det.Signals) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Detection signals:"))
		content.WriteString("\n")
		for _, signal := range det.Signals {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(signal))
			content.WriteString("\n")
		}
	}

	return content.String()
}

// ConfirmGeneration displays the detection results and asks whether to
// generate the pipeline files.
func ConfirmGeneration(det detector.Detection) (bool, error) {
	p := tea.NewProgram(model{detection: det}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error showing detection results: %w", err)
	}

	final := finalModel.(model)
	return final.confirmed, nil
}

// Render returns the styled detection summary without the interactive
// prompt, for non-TTY output.
func Render(det detector.Detection) string {
	return detectionSummary(det)
}
