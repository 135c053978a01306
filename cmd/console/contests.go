package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/ojclient"
)

type contestsMsg struct {
	page ojclient.ContestPage
	err  error
}

// contestsModel is a paged contest browser.
type contestsModel struct {
	oj       *ojclient.Client
	spin     spinner.Model
	page     int
	pageSize int
	contests []entity.Contest
	total    int
	loaded   bool
	err      error
}

func newContestsModel(oj *ojclient.Client, pageSize int) contestsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	return contestsModel{oj: oj, spin: s, page: 1, pageSize: pageSize}
}

func (m contestsModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch())
}

func (m contestsModel) fetch() tea.Cmd {
	oj, page, limit := m.oj, m.page, m.pageSize
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		p, err := oj.ListContests(ctx, "", page, limit)
		return contestsMsg{page: p, err: err}
	}
}

func (m contestsModel) Update(msg tea.Msg) (contestsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contestsMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.contests = msg.page.Contests
			m.total = msg.page.Total
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "n":
			if m.page*m.pageSize < m.total {
				m.page++
				m.loaded = false
				return m, tea.Batch(m.spin.Tick, m.fetch())
			}
		case "left", "p":
			if m.page > 1 {
				m.page--
				m.loaded = false
				return m, tea.Batch(m.spin.Tick, m.fetch())
			}
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m contestsModel) View() string {
	s := titleStyle.Render("Contests") + "\n\n"
	if !m.loaded {
		return s + m.spin.View() + " Loading...\n"
	}
	if m.err != nil {
		return s + errStyle.Render(m.err.Error()) + "\n"
	}
	if len(m.contests) == 0 {
		return s + dimStyle.Render("No contests.") + "\n"
	}
	for _, c := range m.contests {
		visible := " "
		if c.Visible {
			visible = "*"
		}
		lock := ""
		if c.Password != nil {
			lock = " [password]"
		}
		s += fmt.Sprintf("%s %-4d %-36s %-4s %s%s\n",
			visible, c.ID, c.Title, c.RuleType, c.Status, lock)
	}
	s += fmt.Sprintf("\nPage %d, %d total.\n", m.page, m.total)
	s += dimStyle.Render("n/p to page, esc to go back.") + "\n"
	return s
}
