// Package viewstate holds the reactive rules behind the portfolio page: which
// section the nav highlights, how the pointer effects follow the mouse, and
// whether the mobile menu is open. Rendering surfaces (the browser, the
// terminal) plug in through the small interfaces declared here.
package viewstate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned when a name does not match any page section.
var ErrUnknownSection = errors.New("unknown section")

// Section is the anchor id of a page region.
type Section string

const (
	Home     Section = "home"
	Skills   Section = "skills"
	Projects Section = "projects"
	About    Section = "about"
	Contact  Section = "contact"
)

// Sections is the fixed page order. The tracker walks it front to back.
var Sections = []Section{Home, Skills, Projects, About, Contact}

// Title is the label shown in the nav bar.
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Anchor returns the in-page link target.
func (s Section) Anchor() string {
	return "#" + string(s)
}

func (s Section) String() string {
	return string(s)
}

// ParseSection resolves a name (any case, optional leading '#') to a Section.
func ParseSection(name string) (Section, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "#"))
	for _, s := range Sections {
		if string(s) == key {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}
