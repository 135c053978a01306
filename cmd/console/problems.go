package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/ojclient"
	"github.com/programme-lv/console/search"
)

// searchMsg carries a search snapshot from the fetch goroutine into the
// update loop.
type searchMsg struct {
	snap search.Snapshot
}

// problemsModel is the problem browser: a debounced search box over the
// admin problem table.
type problemsModel struct {
	oj       *ojclient.Client
	input    textinput.Model
	searcher *search.ProblemSearch
	snap     search.Snapshot
	pageSize int
}

func newProblemsModel(oj *ojclient.Client, pageSize int, debounce time.Duration) problemsModel {
	ti := textinput.New()
	ti.Placeholder = "search by title or display id"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	m := problemsModel{oj: oj, input: ti, pageSize: pageSize}
	m.searcher = search.New(context.Background(), m.fetch, nil, func(snap search.Snapshot) {
		send(searchMsg{snap: snap})
	})
	if debounce > 0 {
		m.searcher.Scheduler().SetDelay(debounce)
	}
	return m
}

func (m problemsModel) fetch(ctx context.Context, keyword string) ([]entity.Problem, error) {
	page, err := m.oj.ListProblems(ctx, keyword, 1, m.pageSize)
	if err != nil {
		return nil, err
	}
	return page.Problems, nil
}

func (m problemsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m problemsModel) Update(msg tea.Msg) (problemsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case searchMsg:
		m.snap = msg.snap
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.searcher.Type(m.input.Value())
	}
	return m, cmd
}

func (m problemsModel) View() string {
	s := titleStyle.Render("Problems") + "\n\n"
	s += "Search: " + m.input.View() + "\n\n"

	switch m.snap.State {
	case search.StateSearching:
		s += dimStyle.Render("Searching...") + "\n"
	case search.StateErrored:
		s += errStyle.Render(m.snap.Err.Error()) + "\n"
	case search.StateResolved:
		if len(m.snap.Results) == 0 {
			s += dimStyle.Render("No problems found.") + "\n"
		}
		for _, p := range m.snap.Results {
			visible := " "
			if p.Visible {
				visible = "*"
			}
			s += fmt.Sprintf("%s %-8s %-40s %s\n", visible, p.DisplayID, p.Title, p.Difficulty)
		}
	default:
		s += dimStyle.Render("Type to search.") + "\n"
	}

	s += "\n" + dimStyle.Render("Esc to go back.") + "\n"
	return s
}
