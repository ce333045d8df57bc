// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the datachat TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	AIModeOn     lipgloss.Style
	AIModeOff    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// SQL BLOCK STYLES
	// ==========================================================================

	SQLBlock     lipgloss.Style
	SQLLangBadge lipgloss.Style

	// ==========================================================================
	// RESULT TABLE STYLES
	// ==========================================================================

	TableBox       lipgloss.Style
	TableHeader    lipgloss.Style
	TableCell      lipgloss.Style
	TableCount     lipgloss.Style
	TableShowMore  lipgloss.Style
	TableSeparator lipgloss.Style

	// ==========================================================================
	// OSINT DOSSIER STYLES
	// ==========================================================================

	DossierBox         lipgloss.Style
	DossierTitle       lipgloss.Style
	DossierStats       lipgloss.Style
	DossierLabel       lipgloss.Style
	DossierValue       lipgloss.Style
	SocialFound        lipgloss.Style
	SocialAbsent       lipgloss.Style
	SocialUnknown      lipgloss.Style
	BreachBox          lipgloss.Style
	BreachTitle        lipgloss.Style
	GoogleHitTitle     lipgloss.Style
	GoogleHitCategory  lipgloss.Style
	DirectoryBox       lipgloss.Style
	DirectoryTitle     lipgloss.Style

	// ==========================================================================
	// METADATA FOOTER STYLES
	// ==========================================================================

	MetaFooter lipgloss.Style

	// ==========================================================================
	// CONVERSATION LIST STYLES
	// ==========================================================================

	ConvList         lipgloss.Style
	ConvItem         lipgloss.Style
	ConvItemSelected lipgloss.Style
	ConvTitle        lipgloss.Style
	ConvMeta         lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox    lipgloss.Style
	WelcomeTitle  lipgloss.Style
	WelcomeInfo   lipgloss.Style
	DBChip        lipgloss.Style
	DBChipEmpty   lipgloss.Style
	SuggestionKey lipgloss.Style
	Suggestion    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(ErrorBubbleFg).
		Background(ErrorBubbleBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.AIModeOn = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.AIModeOff = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// SQL block
	t.SQLBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SQLLangBadge = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Result table
	t.TableBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.TableCell = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.TableShowMore = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.TableSeparator = lipgloss.NewStyle().
		Foreground(Overlay)

	// OSINT dossier
	t.DossierBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.DossierTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.DossierStats = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.DossierLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DossierValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.SocialFound = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.SocialAbsent = lipgloss.NewStyle().
		Foreground(Rose)

	t.SocialUnknown = lipgloss.NewStyle().
		Foreground(Amber)

	t.BreachBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2)

	t.BreachTitle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.GoogleHitTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.GoogleHitCategory = lipgloss.NewStyle().
		Foreground(Amber)

	t.DirectoryBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Cyan).
		BorderLeft(true).
		PaddingLeft(2)

	t.DirectoryTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Metadata footer
	t.MetaFooter = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Conversation list
	t.ConvList = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.ConvItem = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ConvItemSelected = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ConvTitle = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ConvMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 3)

	t.WelcomeTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.DBChip = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.DBChipEmpty = lipgloss.NewStyle().
		Foreground(Amber)

	t.SuggestionKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.Suggestion = lipgloss.NewStyle().
		Foreground(TextSecondary)
}
