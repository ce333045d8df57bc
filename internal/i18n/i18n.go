// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n provides the English and French user-facing strings.
//
// The language comes from configuration ("en", "fr") or, on "auto", from
// the LANG environment variable via x/text language matching. French
// carries its own pluralization for the database counter; everything
// else is a fixed table.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Strings is one language's user-facing text.
type Strings struct {
	Title          string
	Subtitle       string
	NoDB           string
	NoDBSub        string
	Placeholder    string
	Searching      string
	OsintSearching string
	AIMode         string
	AIDesc         string
	Footer         string
	Suggestions    []string
	// ErrorConnection is the fixed text of the synthetic assistant
	// message appended when the backend is unreachable.
	ErrorConnection string
	// ErrorUnknown is the fallback detail for failed imports.
	ErrorUnknown string

	Results         string
	Conversations   string
	NewConversation string
	Copied          string

	dbConnected func(n int) string
}

// DBConnected renders the connected-database counter.
func (s *Strings) DBConnected(n int) string {
	return s.dbConnected(n)
}

var english = Strings{
	Title:           "DataChat",
	Subtitle:        "Ask questions in natural language. I search your databases and summarize the results.",
	NoDB:            "No databases imported",
	NoDBSub:         "Go to Databases to import your files",
	Placeholder:     "Ask your question...",
	Searching:       "Searching...",
	OsintSearching:  "OSINT analysis in progress...",
	AIMode:          "AI OSINT Mode",
	AIDesc:          "Profile + social media + Google dorks + Ollama",
	Footer:          "DataChat searches your local databases. Data never leaves your machine.",
	Suggestions:     []string{"Search for JOHN DOE", "How many people in Paris?", "Find john.doe@gmail.com", "List people in Lyon"},
	ErrorConnection: "Connection error. Make sure the backend is running on port 8000.",
	ErrorUnknown:    "Unknown error",
	Results:         "results",
	Conversations:   "Conversations",
	NewConversation: "New conversation",
	Copied:          "Copied to clipboard",
	dbConnected: func(n int) string {
		if n == 1 {
			return "1 database connected"
		}
		return fmt.Sprintf("%d databases connected", n)
	},
}

var french = Strings{
	Title:           "DataChat",
	Subtitle:        "Posez vos questions en langage naturel. Je cherche dans vos bases de données et vous résume les résultats.",
	NoDB:            "Aucune base importée",
	NoDBSub:         "Allez dans Databases pour importer vos fichiers",
	Placeholder:     "Posez votre question...",
	Searching:       "Recherche en cours...",
	OsintSearching:  "Analyse OSINT en cours...",
	AIMode:          "Mode IA OSINT",
	AIDesc:          "Profil + réseaux sociaux + Google dorks + Ollama",
	Footer:          "DataChat recherche dans vos bases de données locales. Les données ne quittent jamais votre machine.",
	Suggestions:     []string{"Cherche JOHN DOE", "Combien de personnes à Paris ?", "Trouve john.doe@gmail.com", "Liste les personnes à Lyon"},
	ErrorConnection: "Erreur de connexion au serveur. Vérifiez que le backend est lancé sur le port 8000.",
	ErrorUnknown:    "Erreur inconnue",
	Results:         "résultats",
	Conversations:   "Conversations",
	NewConversation: "Nouvelle conversation",
	Copied:          "Copié dans le presse-papiers",
	dbConnected: func(n int) string {
		if n == 1 {
			return "1 base connectée"
		}
		return fmt.Sprintf("%d bases connectées", n)
	},
}

// supported lists the languages we carry strings for. English first, so
// it wins as the fallback.
var supported = []language.Tag{
	language.English,
	language.French,
}

var matcher = language.NewMatcher(supported)

// Pick resolves a configured language ("en", "fr", "auto") to its string
// table. Unknown values fall back to English.
func Pick(configured string) *Strings {
	switch configured {
	case "en":
		return &english
	case "fr":
		return &french
	}
	return forTag(systemLanguage())
}

// forTag maps a BCP 47 tag onto the closest supported table.
func forTag(tag language.Tag) *Strings {
	_, index, _ := matcher.Match(tag)
	if supported[index] == language.French {
		return &french
	}
	return &english
}

// systemLanguage derives the preferred language from the environment.
func systemLanguage() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		// Strip the ".UTF-8" style suffix before parsing.
		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}
		if tag, err := language.Parse(val); err == nil {
			return tag
		}
	}
	return language.English
}
