package tui

import (
	"strings"

	"github.com/eddieoz/openxrypt/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m popupModel) openCompose(mode string) (tea.Model, tea.Cmd) {
	m.mode = modeCompose
	m.composeMode = mode
	m.composeFocus = 0
	m.resultText = ""
	for i := range m.composeInputs {
		m.composeInputs[i].SetValue("")
		m.composeInputs[i].Blur()
	}
	m.composeArea.SetValue("")
	m.composeArea.Blur()
	cmd := m.composeInputs[0].Focus()
	return m, cmd
}

// composeFields is the number of focusable widgets in the compose form:
// the local handle, the peer handle (DM mode only) and the message area.
func (m popupModel) composeFields() int {
	if m.composeMode == models.ModePost {
		return 2
	}
	return 3
}

func (m popupModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeMenu
			m.blurCompose()
			return m, nil
		case "tab":
			m.blurCompose()
			m.composeFocus = (m.composeFocus + 1) % m.composeFields()
			cmd := m.focusCompose()
			return m, cmd
		case "ctrl+s":
			if m.composing {
				return m, nil
			}
			return m.submitCompose()
		}
	}

	var cmd tea.Cmd
	switch m.composeWidget() {
	case 0:
		m.composeInputs[0], cmd = m.composeInputs[0].Update(msg)
	case 1:
		m.composeInputs[1], cmd = m.composeInputs[1].Update(msg)
	default:
		m.composeArea, cmd = m.composeArea.Update(msg)
	}
	return m, cmd
}

// composeWidget maps the focus index onto a widget: in post mode the peer
// input is skipped, so index 1 is the message area.
func (m popupModel) composeWidget() int {
	if m.composeMode == models.ModePost && m.composeFocus == 1 {
		return 2
	}
	return m.composeFocus
}

func (m *popupModel) blurCompose() {
	m.composeInputs[0].Blur()
	m.composeInputs[1].Blur()
	m.composeArea.Blur()
}

func (m *popupModel) focusCompose() tea.Cmd {
	switch m.composeWidget() {
	case 0:
		return m.composeInputs[0].Focus()
	case 1:
		return m.composeInputs[1].Focus()
	default:
		return m.composeArea.Focus()
	}
}

func (m popupModel) submitCompose() (tea.Model, tea.Cmd) {
	local := identityFromInput(m.composeInputs[0].Value())
	peer := identityFromInput(m.composeInputs[1].Value())
	text := m.composeArea.Value()

	if local == "" {
		m.errMsg = "your handle is required"
		return m, nil
	}
	if m.composeMode == models.ModeDM && peer == "" {
		m.errMsg = "peer handle is required"
		return m, nil
	}
	if strings.TrimSpace(text) == "" {
		m.errMsg = "message must not be empty"
		return m, nil
	}

	if m.composeMode == models.ModePost {
		peer = ""
	}

	m.composing = true
	m.errMsg = ""
	return m, m.cmdEncrypt(m.composeMode, composeSnapshot(local, peer, text))
}

func (m popupModel) viewCompose() string {
	title := "ENCRYPT DIRECT MESSAGE"
	if m.composeMode == models.ModePost {
		title = "ENCRYPT POST"
	}

	var b strings.Builder
	b.WriteString("You:     [" + m.composeInputs[0].View() + "]\n")
	if m.composeMode == models.ModeDM {
		b.WriteString("Peer:    [" + m.composeInputs[1].View() + "]\n")
	}
	b.WriteString("\nMessage:\n")
	b.WriteString(m.composeArea.View())
	b.WriteString("\n")

	if m.composing {
		b.WriteString("\nEncrypting...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+s: encrypt │ esc: back")
}

func (m popupModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeMenu
	case "c":
		return m, copyToClipboard(m.resultText)
	}

	return m, nil
}

func (m popupModel) viewResult() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	b.WriteString(m.resultText)

	return renderPage("CIPHERTEXT", strings.TrimRight(b.String(), "\n"),
		"c: copy │ esc: back")
}
