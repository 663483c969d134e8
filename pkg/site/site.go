// Package site owns the process-wide portfolio state: the theme, the active
// section and one catalog view per section. It is created once at startup
// and mutated only through its methods.
package site

import (
	"math/rand/v2"
	"strings"

	"github.com/muesli/termenv"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/content"
)

// Section is an entry of the navigation strip.
type Section int

const (
	SectionReads Section = iota
	SectionWritings
	SectionShelf
	SectionGallery
	SectionLab
	SectionContact
)

// Sections lists the navigation strip in display order.
func Sections() []Section {
	return []Section{SectionReads, SectionWritings, SectionShelf, SectionGallery, SectionLab, SectionContact}
}

func (s Section) String() string {
	if s == SectionContact {
		return "CONTACT"
	}
	return strings.ToUpper(s.Catalog())
}

// Catalog is the catalog shown by the section, empty for contact.
func (s Section) Catalog() string {
	switch s {
	case SectionReads:
		return catalog.Reads
	case SectionWritings:
		return catalog.Writings
	case SectionShelf:
		return catalog.Shelf
	case SectionGallery:
		return catalog.Gallery
	case SectionLab:
		return catalog.Lab
	}
	return ""
}

// SectionFor maps a catalog name back to its section.
func SectionFor(name string) (Section, bool) {
	for _, s := range Sections() {
		if s.Catalog() != "" && s.Catalog() == strings.ToLower(name) {
			return s, true
		}
	}
	return SectionReads, false
}

// State is the shared site state.
type State struct {
	lib     *content.Library
	dark    bool
	section Section
	quote   string

	Reads    *catalog.View[content.Entry]
	Writings *catalog.View[content.Entry]
	Lab      *catalog.View[content.Entry]
	Shelf    *catalog.View[content.Book]
	Gallery  *catalog.View[content.GalleryItem]
}

// Option customises New.
type Option func(*options)

type options struct {
	theme    string
	quoteIdx int
	section  Section
}

// WithTheme starts in "dark", "light" or "auto". Auto asks the terminal.
func WithTheme(name string) Option {
	return func(o *options) {
		o.theme = strings.ToLower(strings.TrimSpace(name))
	}
}

// WithQuote pins the hero quote instead of choosing one at random.
func WithQuote(i int) Option {
	return func(o *options) {
		o.quoteIdx = i
	}
}

// WithSection sets the initial section.
func WithSection(s Section) Option {
	return func(o *options) {
		o.section = s
	}
}

// New builds the site over lib. The default theme is dark.
func New(lib *content.Library, opts ...Option) *State {
	o := &options{theme: "dark", quoteIdx: -1}
	for _, opt := range opts {
		opt(o)
	}
	s := &State{
		lib:      lib,
		dark:     ResolveDark(o.theme),
		section:  o.section,
		Reads:    catalog.NewView(lib.Reads, catalog.ReadsSpec),
		Writings: catalog.NewView(lib.Writings, catalog.WritingsSpec),
		Lab:      catalog.NewView(lib.Experiments, catalog.LabSpec),
		Shelf:    catalog.NewView(lib.Books, catalog.ShelfSpec),
		Gallery:  catalog.NewView(lib.Gallery, catalog.GallerySpec),
	}
	if n := len(lib.Quotes); n > 0 {
		i := o.quoteIdx
		if i < 0 || i >= n {
			i = rand.IntN(n)
		}
		s.quote = lib.Quotes[i]
	}
	return s
}

// ResolveDark turns a theme name into a dark flag.
func ResolveDark(theme string) bool {
	switch theme {
	case "light":
		return false
	case "auto":
		return termenv.HasDarkBackground()
	}
	return true
}

// Library is the content behind the site.
func (s *State) Library() *content.Library {
	return s.lib
}

// Dark reports whether the dark theme is active.
func (s *State) Dark() bool {
	return s.dark
}

// ThemeName is "dark" or "light".
func (s *State) ThemeName() string {
	if s.dark {
		return "dark"
	}
	return "light"
}

// ToggleTheme flips between dark and light.
func (s *State) ToggleTheme() {
	s.dark = !s.dark
}

// Section is the active section.
func (s *State) Section() Section {
	return s.section
}

// SetSection activates sec if it is valid.
func (s *State) SetSection(sec Section) bool {
	if sec < SectionReads || sec > SectionContact || sec == s.section {
		return false
	}
	s.section = sec
	return true
}

// NextSection moves through the strip by delta, wrapping around.
func (s *State) NextSection(delta int) {
	n := len(Sections())
	s.section = Section(((int(s.section)+delta)%n + n) % n)
}

// Quote is the hero quote chosen at startup.
func (s *State) Quote() string {
	return s.quote
}

// Links are the contact destinations.
func (s *State) Links() []content.Link {
	return s.lib.Links
}
