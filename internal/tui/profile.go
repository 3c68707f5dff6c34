package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

var errNothingToCopy = errors.New("no token to copy, log in first")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ProfileModel shows the details of the logged in user. The profile is
// fetched every time the page is opened.
type ProfileModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	spinner spinner.Model
	loading bool
	profile *models.Profile
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		auth:    auth,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProfileLoaded:
		m.loading = false
		if msg.Err != nil {
			m.profile = nil
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		m.profile = &msg.Profile
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Token copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyToken()
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.logout):
			m.auth.Logout()
			m.profile = nil
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: LoggedOut{}} }
		}
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading profile...\n")
	case m.profile != nil:
		b.WriteString(renderRow("ID", m.profile.UserID))
		b.WriteString(renderRow("Email", m.profile.Email))
		b.WriteString(renderRow("Name", orDash(m.profile.Name)))
		b.WriteString(renderRow("Age", strconv.Itoa(m.profile.Age)))
		b.WriteString(renderRow("Address", orDash(m.profile.Address)))
	}
	renderFeedback(&b, m.status, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "c: copy token │ r: refresh │ l: logout │ esc: back")
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		profile, err := auth.Profile(ctx)
		return ProfileLoaded{Profile: profile, Err: err}
	}
}

func (m *ProfileModel) cmdCopyToken() tea.Cmd {
	token := m.auth.Token()

	return func() tea.Msg {
		if token == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{err: writeClipboard(token)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
