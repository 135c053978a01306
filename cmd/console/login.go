package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/programme-lv/console/msclient"
	"github.com/programme-lv/console/session"
)

type loginDoneMsg struct {
	err error
}

type loginModel struct {
	ms   *msclient.Client
	sess *session.Session

	username textinput.Model
	password textinput.Model
	// which input has focus: 0 username, 1 password
	focus   int
	waiting bool
	done    bool
	err     error
}

func newLoginModel(ms *msclient.Client, sess *session.Session) loginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 26
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.Width = 26
	pass.EchoMode = textinput.EchoPassword

	return loginModel{ms: ms, sess: sess, username: user, password: pass}
}

func (l loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (l loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return l, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			l.focus = (l.focus + 1) % 2
			l.applyFocus()
			return l, nil
		case tea.KeyEnter:
			if l.focus == 0 {
				l.focus = 1
				l.applyFocus()
				return l, nil
			}
			if l.waiting {
				return l, nil
			}
			l.waiting = true
			l.err = nil
			return l, l.submit()
		}
	case loginDoneMsg:
		l.waiting = false
		if msg.err != nil {
			l.err = msg.err
			return l, nil
		}
		l.done = true
		return l, nil
	}

	var cmd tea.Cmd
	if l.focus == 0 {
		l.username, cmd = l.username.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *loginModel) applyFocus() {
	if l.focus == 0 {
		l.username.Focus()
		l.password.Blur()
	} else {
		l.username.Blur()
		l.password.Focus()
	}
}

func (l loginModel) submit() tea.Cmd {
	username := l.username.Value()
	password := l.password.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		token, err := l.ms.Login(ctx, username, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		if err := l.sess.SetToken(token); err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{}
	}
}

func (l loginModel) View() string {
	s := titleStyle.Render("proglv admin console") + "\n\n"
	s += "Username: " + l.username.View() + "\n"
	s += "Password: " + l.password.View() + "\n\n"
	if l.waiting {
		s += dimStyle.Render("Signing in...") + "\n"
	}
	if l.err != nil {
		s += errStyle.Render(l.err.Error()) + "\n"
	}
	s += dimStyle.Render("Enter to sign in, ctrl+c to quit.") + "\n"
	return s
}
