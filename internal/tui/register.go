package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerEmail = iota
	registerPassword
	registerRepeat
	registerName
	registerAge
	registerAddress
)

// RegisterModel is the registration form. Email and password are required,
// the profile fields are optional. On success it returns to the menu with a
// [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			newTextField("Email", "a@x.com", 254),
			newPasswordField("Password", "password"),
			newPasswordField("Repeat", "repeat password"),
			newTextField("Name", "name", 100),
			newTextField("Age", "age", 3),
			newTextField("Address", "address", 200),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: result.Email}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			request, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(request)
		}
	}

	return m, m.form.update(msg)
}

// request validates the form locally before anything is sent.
func (m *RegisterModel) request() (models.RegisterRequest, string) {
	request := models.RegisterRequest{
		Email:    strings.TrimSpace(m.form.value(registerEmail)),
		Password: m.form.value(registerPassword),
		Name:     strings.TrimSpace(m.form.value(registerName)),
		Address:  strings.TrimSpace(m.form.value(registerAddress)),
	}

	if request.Email == "" || request.Password == "" {
		return request, "email and password are required"
	}
	if request.Password != m.form.value(registerRepeat) {
		return request, "passwords do not match"
	}

	if rawAge := strings.TrimSpace(m.form.value(registerAge)); rawAge != "" {
		age, err := strconv.Atoi(rawAge)
		if err != nil || age < 0 {
			return request, "age must be a non-negative number"
		}
		request.Age = &age
	}

	return request, ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(request models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return RegisterResult{
			Err:   auth.Register(ctx, request),
			Email: request.Email,
		}
	}
}
