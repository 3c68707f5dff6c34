// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-auth-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(renderRow("App", "go-auth-keeper client"))
	b.WriteString(renderRow("Version", info.BuildVersion()))
	b.WriteString(renderRow("Date", info.BuildDate()))
	b.WriteString(renderRow("Commit", info.BuildCommit()))

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}
