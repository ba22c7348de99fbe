// fastaview is an interactive browser over the records of a FASTA file:
// a filterable list of identifiers on the left, the selected record's
// sequence and stats on the right.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"fastaparser/fasta"
	"fastaparser/seq"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	accentColor  = lipgloss.Color("#F59E0B")
	textColor    = lipgloss.Color("#F3F4F6")
	mutedColor   = lipgloss.Color("#9CA3AF")
	borderColor  = lipgloss.Color("#374151")
	surfaceColor = lipgloss.Color("#1F2937")

	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)
)

type recordItem struct {
	rec fasta.Record
}

func (i recordItem) FilterValue() string { return i.rec.ID }

func (i recordItem) Title() string {
	if i.rec.ID == "" {
		return "(no id)"
	}
	return i.rec.ID
}

func (i recordItem) Description() string {
	desc := i.rec.Description
	if desc == "" {
		desc = "—"
	}
	return fmt.Sprintf("%s · %d letters", desc, len(i.rec.Seq))
}

type model struct {
	list    list.Model
	records []fasta.Record
	width   int
	height  int
}

func newModel(records []fasta.Record, title string) model {
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = recordItem{rec: rec}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	return model{list: l, records: records}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.leftPanel(), m.rightPanel())
	return lipgloss.JoinVertical(lipgloss.Left, main, m.statusBar())
}

func (m model) leftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) rightPanel() string {
	rightWidth := (m.width * 2) / 3

	sel := m.list.SelectedItem()
	if sel == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No record selected")
	}
	rec := sel.(recordItem).rec

	header := titleStyle.Render(">" + rec.Header())
	meta := metaStyle.Render(fmt.Sprintf("length %d · GC %.2f%% · type %s",
		len(rec.Seq), seq.GCContent(rec.Seq)*100, seq.Infer(rec.Seq)))

	body := sequenceStyle.
		Width(rightWidth - 6).
		Render(sequenceOrPlaceholder(rec.Seq))

	panel := lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body)
	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panel)
}

func sequenceOrPlaceholder(s string) string {
	if s == "" {
		return metaStyle.Render("empty sequence")
	}
	return s
}

func (m model) statusBar() string {
	left := fmt.Sprintf("%d/%d records", m.list.Index()+1, len(m.records))
	right := "'/' filter · 'q' quit"
	spacing := m.width - len(left) - len(right) - 4
	if spacing < 1 {
		spacing = 1
	}
	return statusBarStyle.
		Width(m.width).
		Render(left + strings.Repeat(" ", spacing) + right)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false, Prefix: "fastaview"})

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fastaview <file.fasta | ->")
		os.Exit(2)
	}
	path := os.Args[1]

	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			logger.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	records, err := fasta.ReadAll(in)
	if err != nil {
		logger.Fatal(err)
	}
	if len(records) == 0 {
		logger.Fatal("no records in input")
	}

	p := tea.NewProgram(newModel(records, path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal(err)
	}
}
