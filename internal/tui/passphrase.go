package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m popupModel) updatePassphrase(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeMenu
			m.passInput.Blur()
			return m, nil
		case "enter":
			passphrase := m.passInput.Value()
			if strings.TrimSpace(passphrase) == "" {
				m.errMsg = "passphrase must not be empty"
				return m, nil
			}
			return m, m.cmdSetPassphrase(passphrase)
		}
	}

	var cmd tea.Cmd
	m.passInput, cmd = m.passInput.Update(msg)
	return m, cmd
}

func (m popupModel) viewPassphrase() string {
	out := "The passphrase unlocks your private keys for this session.\n"
	out += "It is held in daemon memory only and never written to disk.\n\n"
	out += "Passphrase: [" + m.passInput.View() + "]\n"
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("UNLOCK SESSION", strings.TrimRight(out, "\n"), "enter: unlock │ esc: back")
}
