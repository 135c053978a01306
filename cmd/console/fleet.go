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

const fleetRefreshInterval = 5 * time.Second

type fleetMsg struct {
	servers []entity.JudgeServer
	err     error
}

type fleetTickMsg struct{}

// fleetModel shows the judge fleet and refreshes it on a timer.
type fleetModel struct {
	oj      *ojclient.Client
	spin    spinner.Model
	servers []entity.JudgeServer
	loaded  bool
	err     error
}

func newFleetModel(oj *ojclient.Client) fleetModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	return fleetModel{oj: oj, spin: s}
}

func (m fleetModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch())
}

func (m fleetModel) fetch() tea.Cmd {
	oj := m.oj
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		servers, err := oj.ListJudgeServers(ctx)
		return fleetMsg{servers: servers, err: err}
	}
}

func (m fleetModel) Update(msg tea.Msg) (fleetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case fleetMsg:
		m.loaded = true
		m.servers = msg.servers
		m.err = msg.err
		return m, tea.Tick(fleetRefreshInterval, func(time.Time) tea.Msg {
			return fleetTickMsg{}
		})
	case fleetTickMsg:
		return m, m.fetch()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m fleetModel) View() string {
	s := titleStyle.Render("Judge fleet") + "\n\n"
	if !m.loaded {
		return s + m.spin.View() + " Loading...\n"
	}
	if m.err != nil {
		return s + errStyle.Render(m.err.Error()) + "\n"
	}
	if len(m.servers) == 0 {
		return s + dimStyle.Render("No judge servers registered.") + "\n"
	}
	s += fmt.Sprintf("%-12s %-10s %-6s %-8s %-8s %s\n",
		"HOST", "VERSION", "TASKS", "CPU", "MEM", "STATUS")
	for _, srv := range m.servers {
		status := srv.Status
		if srv.Disabled {
			status = "disabled"
		}
		s += fmt.Sprintf("%-12s %-10s %-6d %-8s %-8s %s\n",
			srv.Hostname, srv.JudgerVersion, srv.TaskNumber,
			fmt.Sprintf("%.0f%%", srv.CPUUsage),
			fmt.Sprintf("%.0f%%", srv.MemoryUsage),
			status)
	}
	s += "\n" + dimStyle.Render("Refreshes every 5s. Esc to go back.") + "\n"
	return s
}
