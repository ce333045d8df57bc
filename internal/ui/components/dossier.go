// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/datachat-tui/internal/model"
	"github.com/jeranaias/datachat-tui/internal/osint"
	"github.com/jeranaias/datachat-tui/internal/ui/styles"
)

// RenderDossier renders the OSINT panel: stats strip, identity card,
// social profiles, breaches, search hits, directory listings, map link.
// Sections the dossier lacks are simply skipped.
func RenderDossier(theme *styles.Theme, d *osint.Dossier, width int) string {
	if d == nil {
		return ""
	}

	var sections []string

	if s := renderStatsStrip(theme, d); s != "" {
		sections = append(sections, s)
	}
	if s := renderIdentity(theme, d); s != "" {
		sections = append(sections, s)
	}
	if s := renderSocials(theme, d.Socials); s != "" {
		sections = append(sections, s)
	}
	if s := renderBreaches(theme, d.Breaches); s != "" {
		sections = append(sections, s)
	}
	if s := renderGoogleHits(theme, d, width); s != "" {
		sections = append(sections, s)
	}
	if s := renderDirectory(theme, d.Directory); s != "" {
		sections = append(sections, s)
	}
	if d.MapURL != "" {
		sections = append(sections, theme.DossierLabel.Render("Map: ")+styles.RenderLink(d.MapURL))
	}

	if len(sections) == 0 {
		return ""
	}

	body := strings.Join(sections, "\n\n")
	title := theme.DossierTitle.Render("OSINT PROFILE")
	return theme.DossierBox.Width(maxInt(width-2, 30)).Render(title + "\n" + body)
}

// renderStatsStrip echoes the backend's scan summary verbatim.
func renderStatsStrip(theme *styles.Theme, d *osint.Dossier) string {
	if d.Stats == nil {
		return ""
	}
	parts := []string{
		"Google: " + theme.DossierValue.Render(strconv.Itoa(d.Stats.GoogleHits)),
		"Profiles: " + theme.DossierValue.Render(fmt.Sprintf("%d/%d", d.Stats.SocialFound, d.Stats.SocialChecked)),
		"Breaches: " + theme.DossierValue.Render(strconv.Itoa(d.Stats.Breaches)),
	}
	if d.ScanTime > 0 {
		parts = append(parts, strconv.FormatFloat(d.ScanTime, 'f', -1, 64)+"s")
	}
	return theme.DossierStats.Render(strings.Join(parts, "  │  "))
}

func renderIdentity(theme *styles.Theme, d *osint.Dossier) string {
	var lines []string

	if id := d.Identity; id != nil {
		if id.Name != "" {
			lines = append(lines, field(theme, "Name", id.Name))
		}
		if id.Email != "" {
			lines = append(lines, field(theme, "Email", id.Email))
		}
		if id.Phone != "" {
			label := "Phone"
			if id.PhoneType != "" {
				label = "Phone (" + id.PhoneType + ")"
			}
			lines = append(lines, field(theme, label, id.Phone))
		}
		if id.City != "" {
			lines = append(lines, field(theme, "Location", id.Location()))
		}
	}

	if acct := d.Account; acct != nil {
		lines = append(lines, field(theme, "Provider", acct.Provider)+
			"  "+field(theme, "Username", acct.Username)+
			"  "+field(theme, "Type", acct.Kind))
	}

	return strings.Join(lines, "\n")
}

func renderSocials(theme *styles.Theme, socials []osint.Social) string {
	if len(socials) == 0 {
		return ""
	}

	lines := []string{theme.DossierTitle.Render("VERIFIED SOCIAL PROFILES")}
	for _, s := range socials {
		badge := socialBadge(theme, s.Existence)
		line := badge + " " + theme.DossierValue.Render(s.Platform)
		if s.Username != "" {
			line += theme.DossierLabel.Render(" @" + s.Username)
		}
		if s.URL != "" && s.Existence == osint.ExistenceFound {
			line += " " + styles.RenderLink(s.URL)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// socialBadge renders the tri-state marker. An unchecked profile is not
// an absent one; the three states stay distinct.
func socialBadge(theme *styles.Theme, e osint.Existence) string {
	switch e {
	case osint.ExistenceFound:
		return theme.SocialFound.Render("● " + e.Label())
	case osint.ExistenceAbsent:
		return theme.SocialAbsent.Render("○ " + e.Label())
	default:
		return theme.SocialUnknown.Render("◌ " + e.Label())
	}
}

func renderBreaches(theme *styles.Theme, breaches []osint.BreachEntry) string {
	if len(breaches) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.BreachTitle.Render(fmt.Sprintf("DATA BREACHES (%d)", len(breaches))))
	for _, br := range breaches {
		b.WriteString("\n")
		b.WriteString(theme.DossierValue.Render(br.Name))
		if br.Date != "" {
			b.WriteString(theme.DossierLabel.Render("  " + br.Date))
		}
		if br.DataTypes != "" {
			b.WriteString("\n  " + theme.DossierLabel.Render(br.DataTypes))
		}
		if br.Domain != "" {
			if br.DomainIsLink {
				b.WriteString("\n  " + styles.RenderLink(br.Domain))
			} else {
				b.WriteString("\n  " + theme.DossierLabel.Render(br.Domain))
			}
		}
	}
	return theme.BreachBox.Render(b.String())
}

func renderGoogleHits(theme *styles.Theme, d *osint.Dossier, width int) string {
	if len(d.GoogleHits) == 0 {
		return ""
	}

	lines := []string{theme.DossierTitle.Render(fmt.Sprintf("GOOGLE RESULTS (%d)", d.GoogleTotal))}
	for _, hit := range d.GoogleHits {
		title := theme.GoogleHitTitle.Render(hit.Title)
		tag := theme.GoogleHitCategory.Render("[" + hit.CategoryLabel() + "]")
		lines = append(lines, title+" "+tag)
		if hit.Snippet != "" {
			for _, l := range wordWrap(hit.Snippet, maxInt(width-8, 20)) {
				lines = append(lines, "  "+theme.DossierLabel.Render(l))
			}
		}
		lines = append(lines, "  "+styles.RenderLink(hit.URL))
	}
	return strings.Join(lines, "\n")
}

func renderDirectory(theme *styles.Theme, entries []model.DirectoryEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.DirectoryTitle.Render(fmt.Sprintf("PAGES BLANCHES (%d)", len(entries))))
	for _, e := range entries {
		b.WriteString("\n")
		if e.Name != "" {
			b.WriteString(theme.DossierValue.Render(e.Name))
		}
		if e.Address != "" {
			b.WriteString("\n  " + theme.DossierLabel.Render(e.Address))
		}
		if e.Phone != "" {
			b.WriteString("\n  " + theme.DossierLabel.Render(e.Phone))
		}
	}
	return theme.DirectoryBox.Render(b.String())
}

func field(theme *styles.Theme, label, value string) string {
	return theme.DossierLabel.Render(label+": ") + theme.DossierValue.Render(value)
}
