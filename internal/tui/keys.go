package tui

import (
	"fmt"
	"strings"

	"github.com/eddieoz/openxrypt/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m popupModel) openKeyList(namespace string) (tea.Model, tea.Cmd) {
	m.mode = modeKeyList
	m.keyIdx = 0
	m.keys = nil
	m.loadingKeys = true
	return m, m.cmdLoadKeys(namespace)
}

func (m popupModel) updateKeyList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeMenu
	case "up", "k":
		if m.keyIdx > 0 {
			m.keyIdx--
		}
	case "down", "j":
		if m.keyIdx < len(m.keys)-1 {
			m.keyIdx++
		}
	case "enter":
		entry, ok := m.currentKey()
		if !ok {
			m.status = "no keys stored"
			return m, nil
		}
		return m, m.cmdLoadKey(m.namespace, entry.Handle)
	case "ctrl+d":
		entry, ok := m.currentKey()
		if !ok {
			m.status = "no keys stored"
			return m, nil
		}
		return m, m.cmdDeleteKey(m.namespace, entry.Handle)
	case "c":
		entry, ok := m.currentKey()
		if !ok {
			m.status = "nothing to copy"
			return m, nil
		}
		return m, copyToClipboard(entry.Fingerprint)
	}

	return m, nil
}

func (m popupModel) viewKeyList() string {
	title := strings.ToUpper(m.namespace) + " KEYRING"

	if m.loadingKeys {
		return renderPage(title, "Loading keys...", "esc: back")
	}

	var b strings.Builder
	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if len(m.keys) == 0 {
		b.WriteString("No keys stored.")
		return renderPage(title, b.String(), "esc: back")
	}

	b.WriteString(fmt.Sprintf("  %-20s │ %s\n", "Handle", "Fingerprint"))
	b.WriteString(strings.Repeat("─", 22))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 42))
	b.WriteString("\n")

	for i, entry := range m.keys {
		cursor := " "
		if i == m.keyIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-20s │ %s\n",
			cursor, fitText(entry.Handle.String(), 20), entry.Fingerprint))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: show │ c: copy fingerprint │ ctrl+d: delete │ esc: back")
}

func (m popupModel) updateKeyDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = modeKeyList
	case "c":
		return m, copyToClipboard(m.keyDetail.ArmoredKey)
	}

	return m, nil
}

func (m popupModel) viewKeyDetail() string {
	var b strings.Builder

	b.WriteString("Handle:      " + m.keyDetail.Handle.String() + "\n")
	b.WriteString("Fingerprint: " + m.keyDetail.Fingerprint + "\n")
	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.keyDetail.ArmoredKey)

	return renderPage("KEY "+strings.ToUpper(m.namespace), strings.TrimRight(b.String(), "\n"),
		"c: copy armored key │ esc: back")
}

func (m popupModel) openKeyAdd(namespace string) (tea.Model, tea.Cmd) {
	m.mode = modeKeyAdd
	m.addNamespace = namespace
	m.addFocus = 0
	m.addHandle.SetValue("")
	m.addKey.SetValue("")
	m.addKey.Blur()
	cmd := m.addHandle.Focus()
	return m, cmd
}

func (m popupModel) updateKeyAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeMenu
			m.addHandle.Blur()
			m.addKey.Blur()
			return m, nil
		case "tab":
			if m.addFocus == 0 {
				m.addFocus = 1
				m.addHandle.Blur()
				cmd := m.addKey.Focus()
				return m, cmd
			}
			m.addFocus = 0
			m.addKey.Blur()
			cmd := m.addHandle.Focus()
			return m, cmd
		case "ctrl+s":
			if m.addSaving {
				return m, nil
			}
			handle := strings.TrimSpace(m.addHandle.Value())
			armored := strings.TrimSpace(m.addKey.Value())
			if handle == "" || armored == "" {
				m.errMsg = "handle and key are both required"
				return m, nil
			}
			m.addSaving = true
			m.errMsg = ""
			return m, m.cmdSaveKey(m.addNamespace, identityFromInput(handle), armored)
		}
	}

	var cmd tea.Cmd
	if m.addFocus == 0 {
		m.addHandle, cmd = m.addHandle.Update(msg)
	} else {
		m.addKey, cmd = m.addKey.Update(msg)
	}
	return m, cmd
}

func (m popupModel) viewKeyAdd() string {
	var b strings.Builder

	b.WriteString("Handle:  [" + m.addHandle.View() + "]\n\n")
	b.WriteString("Armored key:\n")
	b.WriteString(m.addKey.View())
	b.WriteString("\n")

	if m.addSaving {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("ADD "+strings.ToUpper(m.addNamespace)+" KEY",
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+s: save │ esc: back")
}

func (m popupModel) currentKey() (models.KeyListEntry, bool) {
	if m.keyIdx < 0 || m.keyIdx >= len(m.keys) {
		return models.KeyListEntry{}, false
	}
	return m.keys[m.keyIdx], true
}

// identityFromInput normalises a hand-typed handle into the form the
// platform adapters produce.
func identityFromInput(raw string) models.Identity {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "@") || isAllDigits(raw) {
		return models.Identity(raw)
	}
	return models.Identity("@" + raw)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
