// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package osint

import (
	"net/url"
	"strings"

	"github.com/jeranaias/datachat-tui/internal/model"
)

// MaxGoogleHits caps the flattened search-hit listing. The listing header
// still reports the uncapped total.
const MaxGoogleHits = 15

// mapSearchBase is the prefix of the generated map lookup link.
const mapSearchBase = "https://www.google.com/maps/search/"

// mapCountry is appended to every map lookup. The backend's directory
// collectors only cover France.
const mapCountry = "France"

// =============================================================================
// EXISTENCE (TRI-STATE)
// =============================================================================

// Existence is the verification state of a social profile. A platform the
// collectors never checked is not the same thing as a platform that was
// checked and came back negative, so this is a three-valued type rather
// than a bool.
type Existence int

const (
	// ExistenceUnknown means the platform was never checked.
	ExistenceUnknown Existence = iota
	// ExistenceFound means the profile was checked and exists.
	ExistenceFound
	// ExistenceAbsent means the profile was checked and does not exist.
	ExistenceAbsent
)

// Label returns the short badge text for the state.
func (e Existence) Label() string {
	switch e {
	case ExistenceFound:
		return "FOUND"
	case ExistenceAbsent:
		return "404"
	default:
		return "?"
	}
}

func existenceOf(checked *bool) Existence {
	if checked == nil {
		return ExistenceUnknown
	}
	if *checked {
		return ExistenceFound
	}
	return ExistenceAbsent
}

// =============================================================================
// DOSSIER
// =============================================================================

// Dossier is the normalized, display-ready view of an OSINT payload.
// Every section is independently optional: a nil or empty section means
// the payload had nothing for it, and no section's presence depends on
// another's.
type Dossier struct {
	Identity   *Identity
	Account    *Account
	Socials    []Social
	Breaches   []BreachEntry
	GoogleHits []TaggedHit
	// GoogleTotal is the hit count before the MaxGoogleHits cap.
	GoogleTotal int
	Directory   []model.DirectoryEntry
	Stats       *model.OsintStats
	ScanTime    float64
	// MapURL is a map lookup for the subject's address. Empty when the
	// payload has no city.
	MapURL string
}

// Identity carries the flat identity fields of the payload.
type Identity struct {
	Name       string
	Email      string
	Phone      string
	PhoneType  string
	Address    string
	CodePostal string
	City       string
}

// Location renders the address parts as a single display line.
func (i *Identity) Location() string {
	var b strings.Builder
	if i.Address != "" {
		b.WriteString(i.Address)
		b.WriteString(", ")
	}
	if i.CodePostal != "" {
		b.WriteString(i.CodePostal)
		b.WriteString(" ")
	}
	b.WriteString(i.City)
	return b.String()
}

// Account describes the email account, present only when the payload
// identified a provider.
type Account struct {
	Provider string
	Username string
	// Kind is the binary classification of the address, "Personal" or
	// "Professional".
	Kind string
}

// Social is one checked social platform with its tri-state result.
type Social struct {
	Platform  string
	Username  string
	URL       string
	Existence Existence
}

// BreachEntry is one breach record, with the domain pre-classified as
// linkable or plain text.
type BreachEntry struct {
	Name      string
	Date      string
	DataTypes string
	Domain    string
	// DomainIsLink is true when Domain is a URL worth rendering as one.
	DomainIsLink bool
}

// TaggedHit is a search hit annotated with the category it came from.
type TaggedHit struct {
	model.GoogleHit
	Category string
}

// CategoryLabel returns the category formatted for display.
func (h TaggedHit) CategoryLabel() string {
	return strings.ReplaceAll(h.Category, "_", " ")
}

// =============================================================================
// AGGREGATION
// =============================================================================

// Aggregate normalizes a raw payload into a Dossier. Returns nil for a nil
// payload.
func Aggregate(p *model.OsintPayload) *Dossier {
	if p == nil {
		return nil
	}

	d := &Dossier{
		Directory: p.PagesBlanches,
		Stats:     p.Stats,
		ScanTime:  p.ScanTime,
	}

	if p.Name != "" || p.Email != "" || p.Phone != "" || p.City != "" {
		identity := &Identity{
			Name:       p.Name,
			Email:      p.Email,
			Phone:      p.Phone,
			Address:    p.Address,
			CodePostal: p.CodePostal,
			City:       p.City,
		}
		if p.PhoneInfo != nil {
			identity.PhoneType = p.PhoneInfo.Type
		}
		d.Identity = identity
	}

	if p.EmailInfo != nil && p.EmailInfo.Provider != "" {
		username := p.EmailInfo.Username
		if username == "" {
			username = p.Username
		}
		kind := "Professional"
		if p.EmailInfo.IsPersonal {
			kind = "Personal"
		}
		d.Account = &Account{
			Provider: p.EmailInfo.Provider,
			Username: username,
			Kind:     kind,
		}
	}

	for _, sp := range p.SocialProfiles {
		d.Socials = append(d.Socials, Social{
			Platform:  sp.Platform,
			Username:  sp.Username,
			URL:       sp.URL,
			Existence: existenceOf(sp.Exists),
		})
	}

	for _, b := range p.Breaches {
		d.Breaches = append(d.Breaches, BreachEntry{
			Name:         b.Name,
			Date:         b.Date,
			DataTypes:    b.DataTypes,
			Domain:       b.Domain,
			DomainIsLink: strings.HasPrefix(b.Domain, "http"),
		})
	}

	for _, cat := range p.GoogleResults.Categories() {
		for _, hit := range p.GoogleResults.Hits(cat) {
			d.GoogleTotal++
			if len(d.GoogleHits) < MaxGoogleHits {
				d.GoogleHits = append(d.GoogleHits, TaggedHit{GoogleHit: hit, Category: cat})
			}
		}
	}

	if p.City != "" {
		query := p.Address + " " + p.CodePostal + " " + p.City + " " + mapCountry
		d.MapURL = mapSearchBase + url.PathEscape(query)
	}

	return d
}
