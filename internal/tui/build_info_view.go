// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/eddieoz/openxrypt/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, daemonVersion string) string {
	var b strings.Builder

	b.WriteString("Application:    OpenXrypt popup\n")
	b.WriteString("Version:        ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date:           ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit:         ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Daemon version: ")
	b.WriteString(valueOrNA(daemonVersion))

	return renderPage("ABOUT", b.String(), "esc: back")
}
