// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"strings"
	"testing"
)

func TestPickExplicit(t *testing.T) {
	if got := Pick("en"); got.Searching != "Searching..." {
		t.Errorf("en searching = %q", got.Searching)
	}
	if got := Pick("fr"); got.Searching != "Recherche en cours..." {
		t.Errorf("fr searching = %q", got.Searching)
	}
}

func TestPickAutoFollowsLang(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")

	t.Setenv("LANG", "fr_FR.UTF-8")
	if got := Pick("auto"); !strings.Contains(got.ErrorConnection, "Erreur de connexion") {
		t.Errorf("auto with French LANG picked %q", got.ErrorConnection)
	}

	t.Setenv("LANG", "en_US.UTF-8")
	if got := Pick("auto"); !strings.Contains(got.ErrorConnection, "Connection error") {
		t.Errorf("auto with English LANG picked %q", got.ErrorConnection)
	}

	t.Setenv("LANG", "C")
	if got := Pick("auto"); !strings.Contains(got.ErrorConnection, "Connection error") {
		t.Errorf("auto with C locale picked %q", got.ErrorConnection)
	}
}

func TestUnknownFallsBackToEnglish(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := Pick("auto"); got.Title != "DataChat" || !strings.Contains(got.ErrorConnection, "Connection error") {
		t.Errorf("unsupported language should fall back to English")
	}
}

func TestDBConnectedPlural(t *testing.T) {
	if got := Pick("fr").DBConnected(1); got != "1 base connectée" {
		t.Errorf("fr singular = %q", got)
	}
	if got := Pick("fr").DBConnected(3); got != "3 bases connectées" {
		t.Errorf("fr plural = %q", got)
	}
	if got := Pick("en").DBConnected(2); got != "2 databases connected" {
		t.Errorf("en plural = %q", got)
	}
}
