package statapp

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#10B981")
	accentColor    = lipgloss.Color("#F59E0B")
	mutedColor     = lipgloss.Color("#9CA3AF")

	headerStyle  = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(primaryColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	nucleotideStyle = lipgloss.NewStyle().Foreground(secondaryColor)
	aminoacidStyle  = lipgloss.NewStyle().Foreground(accentColor)
)

func typeStyle(t string) lipgloss.Style {
	switch t {
	case "nucleotide":
		return nucleotideStyle
	case "aminoacid":
		return aminoacidStyle
	default:
		return mutedStyle
	}
}
