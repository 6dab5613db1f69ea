package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/flowreach/pkg/flow"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sortKey orders the rows of a ReportModel.
type sortKey int

const (
	sortByNode sortKey = iota
	sortByDistance
	sortByReach
)

var sortNames = [...]string{"node", "distance", "reach"}

func (k sortKey) String() string { return sortNames[k] }

// =============================================================================
// ReportModel - Interactive report table
// =============================================================================

// ReportModel is the bubbletea model for browsing a report.
type ReportModel struct {
	Report  flow.Report
	Summary flow.Summary
	Mode    string
	Order   []int // node indices in display order
	Sort    sortKey
	Cursor  int
	Height  int
	Offset  int
}

// NewReportModel creates a report model sorted by node index.
func NewReportModel(r flow.Report, mode string) ReportModel {
	m := ReportModel{
		Report:  r,
		Summary: r.Summary(),
		Mode:    mode,
		Height:  15,
	}
	m.Order = m.sorted(sortByNode)
	return m
}

// sorted returns node indices ordered by key; ties keep node order.
// Distance and reach sort descending.
func (m ReportModel) sorted(key sortKey) []int {
	order := make([]int, len(m.Report))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ra, rb := m.Report[a], m.Report[b]
		switch key {
		case sortByDistance:
			if ra.MaxDistance != rb.MaxDistance {
				if ra.MaxDistance > rb.MaxDistance {
					return -1
				}
				return 1
			}
		case sortByReach:
			if ra.Reachable != rb.Reachable {
				return rb.Reachable - ra.Reachable
			}
		}
		return a - b
	})
	return order
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Order)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Order); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "s":
			m.Sort = (m.Sort + 1) % sortKey(len(sortNames))
			m.Order = m.sorted(m.Sort)
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Reach Report"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d nodes · %d isolated · mode %s · sorted by %s",
		m.Summary.Nodes, m.Summary.Isolated, m.Mode, m.Sort)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  s sort  q quit"))
	b.WriteString("\n\n")

	if len(m.Order) == 0 {
		b.WriteString(listDimStyle.Render("  (empty graph)"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Order))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		node := m.Order[i]
		metric := m.Report[node]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(node),
			strconv.FormatUint(metric.MaxDistance, 10),
			strconv.Itoa(metric.Reachable),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Max distance", "Reached").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Order) {
				return lipgloss.NewStyle()
			}
			if idx == m.Cursor {
				return listSelectedStyle
			}
			if m.Report[m.Order[idx]].Reachable == 0 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Order))))

	return b.String()
}

// Selected returns the node index under the cursor, or -1 when empty.
func (m ReportModel) Selected() int {
	if len(m.Order) == 0 {
		return -1
	}
	return m.Order[m.Cursor]
}
