package tui

import "github.com/eddieoz/openxrypt/models"

type passStatusMsg struct {
	unlocked bool
	err      error
}

type passSetMsg struct {
	err error
}

type passResetMsg struct {
	err error
}

type keysLoadedMsg struct {
	namespace string
	keys      []models.KeyListEntry
	err       error
}

type keyLoadedMsg struct {
	key models.KeyResponse
	err error
}

type keySavedMsg struct {
	key models.KeyResponse
	err error
}

type keyDeletedMsg struct {
	err error
}

type encryptDoneMsg struct {
	snap models.PageSnapshot
	err  error
}

type copiedMsg struct {
	err error
}

type versionMsg struct {
	version string
	err     error
}
