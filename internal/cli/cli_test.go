// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, args := Parse(nil)
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want CmdTUI", cmd)
	}
	if args.AIMode {
		t.Error("aiMode should default off")
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"ask", []string{"ask", "how", "many"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"databases", []string{"databases"}, CmdDatabases},
		{"dbs alias", []string{"dbs"}, CmdDatabases},
		{"scan", []string{"scan"}, CmdScan},
		{"import", []string{"import", "file.csv"}, CmdImport},
		{"stats", []string{"stats"}, CmdStats},
		{"status", []string{"status"}, CmdStatus},
		{"health alias", []string{"health"}, CmdStatus},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"tui explicit", []string{"tui"}, CmdTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := Parse(tt.argv)
			if cmd != tt.want {
				t.Errorf("Parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseAskJoinsQuery(t *testing.T) {
	_, args := Parse([]string{"ask", "how", "many", "clients?"})
	if args.Query != "how many clients?" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseBareQuestionBecomesAsk(t *testing.T) {
	cmd, args := Parse([]string{"how", "many", "clients?"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "how many clients?" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		server string
		lang   string
		ai     bool
	}{
		{"space form", []string{"--server", "http://x:9/api", "ask", "q"}, "http://x:9/api", "", false},
		{"equals form", []string{"--server=http://x:9/api", "ask", "q"}, "http://x:9/api", "", false},
		{"lang", []string{"--lang", "fr", "chat"}, "", "fr", false},
		{"ai", []string{"--ai", "ask", "q"}, "", "", true},
		{"osint alias", []string{"--osint", "ask", "q"}, "", "", true},
		{"after command", []string{"ask", "--ai", "q"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, args := Parse(tt.argv)
			if args.Server != tt.server {
				t.Errorf("server = %q, want %q", args.Server, tt.server)
			}
			if args.Lang != tt.lang {
				t.Errorf("lang = %q, want %q", args.Lang, tt.lang)
			}
			if args.AIMode != tt.ai {
				t.Errorf("aiMode = %v, want %v", args.AIMode, tt.ai)
			}
		})
	}
}

func TestPadRightUsesDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{"ascii", "clients", 12},
		{"accented", "propriétés", 12},
		{"accented at several cells", "médiathèque Grésivaudan", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.width)
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("padRight(%q, %d) renders %d columns, want %d",
					tt.input, tt.width, w, tt.width)
			}
		})
	}
}

func TestPadRightLeavesWideStrings(t *testing.T) {
	if got := padRight("données clients", 5); got != "données clients" {
		t.Errorf("padRight should not touch strings already past the width, got %q", got)
	}
}

func TestParseImportArgs(t *testing.T) {
	_, args := Parse([]string{"import", "./data/clients.csv", "--name", "clients"})
	if args.Path != "./data/clients.csv" {
		t.Errorf("path = %q", args.Path)
	}
	if args.Name != "clients" {
		t.Errorf("name = %q", args.Name)
	}

	_, args = Parse([]string{"import", "--name=crm", "data.xlsx"})
	if args.Path != "data.xlsx" || args.Name != "crm" {
		t.Errorf("path = %q, name = %q", args.Path, args.Name)
	}
}
