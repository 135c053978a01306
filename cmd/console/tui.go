// tui.go
package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/programme-lv/console/conf"
	"github.com/programme-lv/console/msclient"
	"github.com/programme-lv/console/ojclient"
	"github.com/programme-lv/console/session"
)

type state int

const (
	stateLogin state = iota
	stateMenu
	stateProblems
	stateContests
	stateCompose
	stateFleet
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9b59b6"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
)

type model struct {
	state state

	cfg  conf.Config
	sess *session.Session
	oj   *ojclient.Client
	ms   *msclient.Client

	loginModel    loginModel
	problemsModel problemsModel
	contestsModel contestsModel
	composeModel  composeModel
	fleetModel    fleetModel
}

func (m model) debounce() time.Duration {
	return time.Duration(m.cfg.Search.DebounceMs) * time.Millisecond
}

func initialModel(cfg conf.Config, sess *session.Session, oj *ojclient.Client, ms *msclient.Client) model {
	return model{
		state:      stateLogin,
		cfg:        cfg,
		sess:       sess,
		oj:         oj,
		ms:         ms,
		loginModel: newLoginModel(ms, sess),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginModel.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		var cmd tea.Cmd
		m.loginModel, cmd = m.loginModel.Update(msg)
		if m.loginModel.done {
			m.state = stateMenu
			return m, nil
		}
		return m, cmd

	case stateMenu:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.state = stateProblems
				m.problemsModel = newProblemsModel(m.oj, m.cfg.Search.PageSize, m.debounce())
				return m, m.problemsModel.Init()
			case "2":
				m.state = stateContests
				m.contestsModel = newContestsModel(m.oj, m.cfg.Search.PageSize)
				return m, m.contestsModel.Init()
			case "3":
				m.state = stateCompose
				m.composeModel = newComposeModel(m.oj, m.ms, m.debounce())
				return m, m.composeModel.Init()
			case "4":
				m.state = stateFleet
				m.fleetModel = newFleetModel(m.oj)
				return m, m.fleetModel.Init()
			}
		}
		return m, nil

	case stateProblems:
		if isBack(msg) {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.problemsModel, cmd = m.problemsModel.Update(msg)
		return m, cmd

	case stateContests:
		if isBack(msg) {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.contestsModel, cmd = m.contestsModel.Update(msg)
		return m, cmd

	case stateCompose:
		if isBack(msg) && !m.composeModel.capturingInput() {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.composeModel, cmd = m.composeModel.Update(msg)
		return m, cmd

	case stateFleet:
		if isBack(msg) {
			m.state = stateMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.fleetModel, cmd = m.fleetModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateLogin:
		return m.loginModel.View()
	case stateMenu:
		s := titleStyle.Render("proglv admin console") + "\n\n"
		s += "Signed in as " + m.sess.Username() + "\n\n"
		s += "1. Browse problems\n"
		s += "2. Browse contests\n"
		s += "3. Compose a workbook\n"
		s += "4. Judge fleet status\n\n"
		s += dimStyle.Render("Press q to quit.") + "\n"
		return s
	case stateProblems:
		return m.problemsModel.View()
	case stateContests:
		return m.contestsModel.View()
	case stateCompose:
		return m.composeModel.View()
	case stateFleet:
		return m.fleetModel.View()
	default:
		return ""
	}
}

// isBack reports the escape-to-menu keys.
func isBack(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	return key.String() == "esc"
}
