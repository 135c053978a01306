package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/programme-lv/console/entity"
	"github.com/programme-lv/console/msclient"
	"github.com/programme-lv/console/ojclient"
	"github.com/programme-lv/console/reconcile"
	"github.com/programme-lv/console/search"
)

type composeState int

const (
	composeStateTitle composeState = iota
	composeStatePick
	composeStateSaving
	composeStateDone
)

type composeSavedMsg struct {
	workbook entity.Workbook
	err      error
}

// composeModel builds a new workbook: name it, pick problems through the
// debounced search, save.
type composeModel struct {
	oj *ojclient.Client
	ms *msclient.Client

	state      composeState
	titleInput textinput.Model
	pickInput  textinput.Model
	selection  *reconcile.Selection
	searcher   *search.ProblemSearch
	snap       search.Snapshot
	cursor     int
	spin       spinner.Model
	conflict   string
	err        error
	saved      entity.Workbook
}

func newComposeModel(oj *ojclient.Client, ms *msclient.Client, debounce time.Duration) composeModel {
	title := textinput.New()
	title.Placeholder = "workbook title"
	title.CharLimit = 64
	title.Width = 40
	title.Focus()

	pick := textinput.New()
	pick.Placeholder = "search problems to add"
	pick.CharLimit = 64
	pick.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	m := composeModel{
		oj:         oj,
		ms:         ms,
		state:      composeStateTitle,
		titleInput: title,
		pickInput:  pick,
		selection:  reconcile.NewSelection(),
		spin:       s,
	}
	sel := m.selection
	m.searcher = search.New(context.Background(), func(ctx context.Context, keyword string) ([]entity.Problem, error) {
		page, err := oj.ListProblems(ctx, keyword, 1, 10)
		if err != nil {
			return nil, err
		}
		return page.Problems, nil
	}, sel, func(snap search.Snapshot) {
		send(searchMsg{snap: snap})
	})
	if debounce > 0 {
		m.searcher.Scheduler().SetDelay(debounce)
	}
	return m
}

func (m composeModel) Init() tea.Cmd {
	return textinput.Blink
}

// capturingInput reports whether esc should be handled locally instead
// of leaving to the menu.
func (m composeModel) capturingInput() bool {
	return m.state == composeStateSaving
}

func (m composeModel) Update(msg tea.Msg) (composeModel, tea.Cmd) {
	switch m.state {
	case composeStateTitle:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
			if m.titleInput.Value() != "" {
				m.state = composeStatePick
				m.titleInput.Blur()
				m.pickInput.Focus()
				return m, textinput.Blink
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd

	case composeStatePick:
		switch msg := msg.(type) {
		case searchMsg:
			m.snap = msg.snap
			if m.cursor >= len(m.snap.Results) {
				m.cursor = 0
			}
			return m, nil
		case tea.KeyMsg:
			switch msg.String() {
			case "up":
				if m.cursor > 0 {
					m.cursor--
				}
				return m, nil
			case "down":
				if m.cursor < len(m.snap.Results)-1 {
					m.cursor++
				}
				return m, nil
			case "enter":
				return m.pickCurrent()
			case "ctrl+s":
				if m.selection.Len() == 0 {
					m.conflict = "pievienojiet vismaz vienu uzdevumu"
					return m, nil
				}
				m.state = composeStateSaving
				return m, tea.Batch(m.spin.Tick, m.save())
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		before := m.pickInput.Value()
		var cmd tea.Cmd
		m.pickInput, cmd = m.pickInput.Update(msg)
		if m.pickInput.Value() != before {
			m.conflict = ""
			m.searcher.Type(m.pickInput.Value())
		}
		return m, cmd

	case composeStateSaving:
		switch msg := msg.(type) {
		case composeSavedMsg:
			if msg.err != nil {
				m.err = msg.err
				m.state = composeStatePick
				return m, nil
			}
			m.saved = msg.workbook
			m.state = composeStateDone
			return m, nil
		case spinner.TickMsg:
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case composeStateDone:
		return m, nil
	}
	return m, nil
}

// pickCurrent moves the highlighted search result into the selection.
// Conflicts surface as a form message, never as an error.
func (m composeModel) pickCurrent() (composeModel, tea.Cmd) {
	if m.snap.State != search.StateResolved || len(m.snap.Results) == 0 {
		return m, nil
	}
	p := m.snap.Results[m.cursor]
	if err := m.selection.Add(p); err != nil {
		m.conflict = err.Error()
		return m, nil
	}
	m.conflict = ""
	m.searcher.Reconcile()
	return m, nil
}

func (m composeModel) save() tea.Cmd {
	title := m.titleInput.Value()
	problems := m.selection.Items()
	ms := m.ms
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		wb, err := ms.CreateWorkbook(ctx, msclient.WorkbookParams{
			Title:   title,
			Visible: false,
		})
		if err != nil {
			return composeSavedMsg{err: err}
		}
		for _, p := range problems {
			if _, err := ms.AddWorkbookProblem(ctx, wb.ID, p.ID); err != nil {
				return composeSavedMsg{err: err}
			}
		}
		return composeSavedMsg{workbook: wb}
	}
}

func (m composeModel) View() string {
	switch m.state {
	case composeStateTitle:
		s := titleStyle.Render("New workbook") + "\n\n"
		s += "Title: " + m.titleInput.View() + "\n\n"
		s += dimStyle.Render("Enter to continue, esc to go back.") + "\n"
		return s

	case composeStatePick:
		s := titleStyle.Render("New workbook: "+m.titleInput.Value()) + "\n\n"
		s += "Add: " + m.pickInput.View() + "\n\n"

		switch m.snap.State {
		case search.StateSearching:
			s += dimStyle.Render("Searching...") + "\n"
		case search.StateErrored:
			s += errStyle.Render(m.snap.Err.Error()) + "\n"
		case search.StateResolved:
			for i, p := range m.snap.Results {
				cursor := "  "
				if i == m.cursor {
					cursor = "> "
				}
				s += fmt.Sprintf("%s%-8s %s\n", cursor, p.DisplayID, p.Title)
			}
		}

		s += "\nSelected (" + fmt.Sprint(m.selection.Len()) + "):\n"
		for i, p := range m.selection.Items() {
			s += fmt.Sprintf("  %d. %-8s %s\n", i+1, p.DisplayID, p.Title)
		}
		if m.conflict != "" {
			s += "\n" + errStyle.Render(m.conflict) + "\n"
		}
		if m.err != nil {
			s += "\n" + errStyle.Render(m.err.Error()) + "\n"
		}
		s += "\n" + dimStyle.Render("Enter to add, ctrl+s to save, esc to go back.") + "\n"
		return s

	case composeStateSaving:
		return m.spin.View() + " Saving workbook...\n"

	case composeStateDone:
		s := fmt.Sprintf("Workbook %q saved with id %d.\n", m.saved.Title, m.saved.ID)
		s += dimStyle.Render("Esc to go back.") + "\n"
		return s
	}
	return ""
}
