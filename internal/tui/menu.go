package tui

import (
	"fmt"
	"strings"

	"github.com/eddieoz/openxrypt/internal/adapter"
	"github.com/eddieoz/openxrypt/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	menuUnlock = iota
	menuLock
	menuPublicKeys
	menuPrivateKeys
	menuAddPublicKey
	menuAddPrivateKey
	menuEncryptDM
	menuEncryptPost
)

var menuItems = []string{
	"Unlock session (set passphrase)",
	"Lock session",
	"Public keyring",
	"Private keyring",
	"Add public key",
	"Add private key",
	"Encrypt direct message",
	"Encrypt post (symmetric)",
}

func (m popupModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(menuItems)-1 {
			m.menuIdx++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		return m.openMenuItem()
	}

	return m, nil
}

func (m popupModel) openMenuItem() (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch m.menuIdx {
	case menuUnlock:
		m.mode = modePassphrase
		m.passInput.SetValue("")
		cmd := m.passInput.Focus()
		return m, cmd
	case menuLock:
		return m, m.cmdResetPassphrase()
	case menuPublicKeys:
		return m.openKeyList(adapter.NamespacePublic)
	case menuPrivateKeys:
		return m.openKeyList(adapter.NamespacePrivate)
	case menuAddPublicKey:
		return m.openKeyAdd(adapter.NamespacePublic)
	case menuAddPrivateKey:
		return m.openKeyAdd(adapter.NamespacePrivate)
	case menuEncryptDM:
		return m.openCompose(models.ModeDM)
	case menuEncryptPost:
		return m.openCompose(models.ModePost)
	}

	return m, nil
}

func (m popupModel) viewMenu() string {
	var b strings.Builder

	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(menuItems)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range menuItems {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.unlocked {
		b.WriteString("Session: unlocked\n")
	} else {
		b.WriteString("Session: locked\n")
	}
	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("OPENXRYPT", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: about │ q: quit")
}
