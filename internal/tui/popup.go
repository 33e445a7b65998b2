// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/eddieoz/openxrypt/internal/adapter"
	"github.com/eddieoz/openxrypt/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type popupMode int

const (
	modeMenu popupMode = iota
	modePassphrase
	modeKeyList
	modeKeyDetail
	modeKeyAdd
	modeCompose
	modeResult
)

type popupModel struct {
	ctx    context.Context
	client adapter.ControlClient

	buildInfo     models.AppBuildInfo
	daemonVersion string
	showBuildInfo bool

	mode    popupMode
	menuIdx int
	status  string
	errMsg  string

	unlocked  bool
	passInput textinput.Model

	namespace   string
	keys        []models.KeyListEntry
	keyIdx      int
	loadingKeys bool
	keyDetail   models.KeyResponse

	addNamespace string
	addHandle    textinput.Model
	addKey       textarea.Model
	addFocus     int
	addSaving    bool

	composeMode   string
	composeInputs []textinput.Model
	composeArea   textarea.Model
	composeFocus  int
	composing     bool
	resultText    string
}

func newPopupModel(ctx context.Context, client adapter.ControlClient, buildInfo models.AppBuildInfo) popupModel {
	passInput := textinput.New()
	passInput.EchoMode = textinput.EchoPassword
	passInput.EchoCharacter = '*'
	passInput.Width = 40

	addHandle := textinput.New()
	addHandle.Width = 40
	addHandle.Placeholder = "@alice"

	addKey := textarea.New()
	addKey.SetWidth(64)
	addKey.SetHeight(8)
	addKey.Placeholder = "-----BEGIN PGP ... KEY BLOCK-----"

	composeInputs := make([]textinput.Model, 2)
	for i := range composeInputs {
		composeInputs[i] = textinput.New()
		composeInputs[i].Width = 40
	}
	composeInputs[0].Placeholder = "@me"
	composeInputs[1].Placeholder = "@peer"

	composeArea := textarea.New()
	composeArea.SetWidth(64)
	composeArea.SetHeight(6)

	return popupModel{
		ctx:           ctx,
		client:        client,
		buildInfo:     buildInfo,
		passInput:     passInput,
		addHandle:     addHandle,
		addKey:        addKey,
		composeInputs: composeInputs,
		composeArea:   composeArea,
	}
}

func (m popupModel) Init() tea.Cmd {
	return tea.Batch(m.cmdCheckPassphrase(), m.cmdVersion())
}

func (m popupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "v":
			if m.mode == modeMenu && !m.showBuildInfo {
				m.showBuildInfo = true
				return m, m.cmdVersion()
			}
		case "esc":
			if m.showBuildInfo {
				m.showBuildInfo = false
				return m, nil
			}
		}

		if m.showBuildInfo {
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case passStatusMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.unlocked = msg.unlocked
		m.errMsg = ""
		return m, nil
	case passSetMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.unlocked = true
		m.errMsg = ""
		m.status = "session unlocked"
		m.passInput.SetValue("")
		m.mode = modeMenu
		return m, nil
	case passResetMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.unlocked = false
		m.errMsg = ""
		m.status = "session locked"
		return m, nil
	case keysLoadedMsg:
		m.loadingKeys = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.namespace = msg.namespace
		m.keys = msg.keys
		if m.keyIdx >= len(m.keys) {
			m.keyIdx = len(m.keys) - 1
		}
		if m.keyIdx < 0 {
			m.keyIdx = 0
		}
		return m, nil
	case keyLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.keyDetail = msg.key
		m.mode = modeKeyDetail
		return m, nil
	case keySavedMsg:
		m.addSaving = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("stored key %s (%s)", msg.key.Handle, msg.key.Fingerprint)
		m.addHandle.SetValue("")
		m.addKey.SetValue("")
		m.mode = modeMenu
		return m, nil
	case keyDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "key deleted"
		m.loadingKeys = true
		return m, m.cmdLoadKeys(m.namespace)
	case encryptDoneMsg:
		m.composing = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.snap.Composer != nil {
			m.resultText = msg.snap.Composer.Text
		}
		m.mode = modeResult
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "copied to clipboard"
		return m, nil
	case versionMsg:
		if msg.err == nil {
			m.daemonVersion = msg.version
		}
		return m, nil
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modePassphrase:
		return m.updatePassphrase(msg)
	case modeKeyList:
		return m.updateKeyList(msg)
	case modeKeyDetail:
		return m.updateKeyDetail(msg)
	case modeKeyAdd:
		return m.updateKeyAdd(msg)
	case modeCompose:
		return m.updateCompose(msg)
	case modeResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m popupModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.daemonVersion)
	}

	switch m.mode {
	case modePassphrase:
		return m.viewPassphrase()
	case modeKeyList:
		return m.viewKeyList()
	case modeKeyDetail:
		return m.viewKeyDetail()
	case modeKeyAdd:
		return m.viewKeyAdd()
	case modeCompose:
		return m.viewCompose()
	case modeResult:
		return m.viewResult()
	default:
		return m.viewMenu()
	}
}

func (m popupModel) cmdCheckPassphrase() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		unlocked, err := client.CheckPassphrase(ctx)
		return passStatusMsg{unlocked: unlocked, err: err}
	}
}

func (m popupModel) cmdSetPassphrase(passphrase string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return passSetMsg{err: client.SetPassphrase(ctx, passphrase)}
	}
}

func (m popupModel) cmdResetPassphrase() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return passResetMsg{err: client.ResetPassphrase(ctx)}
	}
}

func (m popupModel) cmdLoadKeys(namespace string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		keys, err := client.ListKeys(ctx, namespace)
		return keysLoadedMsg{namespace: namespace, keys: keys, err: err}
	}
}

func (m popupModel) cmdLoadKey(namespace string, handle models.Identity) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		key, err := client.GetKey(ctx, namespace, handle)
		return keyLoadedMsg{key: key, err: err}
	}
}

func (m popupModel) cmdSaveKey(namespace string, handle models.Identity, armoredKey string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		key, err := client.PutKey(ctx, namespace, handle, armoredKey)
		return keySavedMsg{key: key, err: err}
	}
}

func (m popupModel) cmdDeleteKey(namespace string, handle models.Identity) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return keyDeletedMsg{err: client.DeleteKey(ctx, namespace, handle)}
	}
}

func (m popupModel) cmdEncrypt(mode string, snap models.PageSnapshot) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		patched, err := client.EncryptText(ctx, mode, snap)
		return encryptDoneMsg{snap: patched, err: err}
	}
}

func (m popupModel) cmdVersion() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		version, err := client.Version(ctx)
		return versionMsg{version: version, err: err}
	}
}

// composeSnapshot builds a synthetic page capture for the manual encrypt
// flow, shaped the way the X adapter expects its identity fragments.
func composeSnapshot(local, peer models.Identity, text string) models.PageSnapshot {
	handle := strings.TrimPrefix(string(local), "@")

	snap := models.PageSnapshot{
		Host:     "x.com",
		Path:     "/messages/popup",
		Scripts:  []string{`window.__INITIAL_STATE__ = {"screen_name":"` + handle + `"};`},
		Composer: &models.TextNode{ID: "popup-composer", Text: text},
	}

	if peer != "" {
		p := string(peer)
		if !strings.HasPrefix(p, "@") {
			p = "@" + p
		}
		snap.Conversation = []string{p}
	}

	return snap
}
