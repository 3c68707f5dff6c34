package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

var menuItems = []menuItem{
	{title: "Register", page: pageRegister},
	{title: "Login", page: pageLogin},
	{title: "Profile", page: pageProfile},
	{title: "Quit"},
}

type MenuModel struct {
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.status = "Registered " + msg.Email + ", you can log in now"
		return m, nil
	case LoggedOut:
		m.status = "Logged out"
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(menuItems)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			m.status = ""
			item := menuItems[m.idx]
			if item.page == "" {
				return m, tea.Quit
			}
			return m, func() tea.Msg { return NavigateTo{Page: item.page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	for i, item := range menuItems {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item.title)
		b.WriteString("\n")
	}
	renderFeedback(&b, m.status, "")

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
