package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/BvspHUB/PortoFabrlio/content"
	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

// span is a run of page lines.
type span struct {
	start, height int
}

// cardBox is where a project card sits on the page, in page lines and columns.
type cardBox struct {
	line, col     int
	width, height int
}

// pageLayout is the rendered page body plus the geometry the view state
// measures against.
type pageLayout struct {
	lines    []string
	sections map[viewstate.Section]span
	cards    []cardBox
}

type pageBuilder struct {
	width  int
	layout pageLayout
}

func (b *pageBuilder) add(block string) {
	b.layout.lines = append(b.layout.lines, strings.Split(block, "\n")...)
}

func (b *pageBuilder) blank(n int) {
	for i := 0; i < n; i++ {
		b.layout.lines = append(b.layout.lines, "")
	}
}

func (b *pageBuilder) section(s viewstate.Section, minHeight int, render func()) {
	start := len(b.layout.lines)
	render()
	b.blank(1)
	if h := len(b.layout.lines) - start; h < minHeight {
		b.blank(minHeight - h)
	}
	b.layout.sections[s] = span{start: start, height: len(b.layout.lines) - start}
}

// renderPage lays the portfolio out for a terminal width. heroHeight keeps the
// landing section a full screen tall; vars are the per-card style variables.
func renderPage(page *content.Content, width, heroHeight int, vars []map[string]string) pageLayout {
	b := &pageBuilder{
		width:  max(width, 20),
		layout: pageLayout{sections: make(map[viewstate.Section]span, len(viewstate.Sections))},
	}
	inner := b.width - 2*pageMargin
	indent := lipgloss.NewStyle().MarginLeft(pageMargin)
	center := lipgloss.NewStyle().Width(b.width).Align(lipgloss.Center)

	b.section(viewstate.Home, heroHeight, func() {
		b.blank(max(heroHeight/4, 1))
		b.add(center.Render(heroStyle.Render(page.Name)))
		b.blank(1)
		b.add(center.Render(mutedStyle.Render(page.Tagline)))
		b.blank(1)
		tags := make([]string, 0, len(page.Languages))
		for _, lang := range page.Languages {
			tags = append(tags, tagStyle.Render(lang))
		}
		b.add(center.Render(lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(strings.Join(tags, " "))))
		b.blank(1)
		socials := make([]string, 0, len(page.Socials))
		for _, s := range page.Socials {
			socials = append(socials, navStyle.Render(s.Label))
		}
		b.add(center.Render(strings.Join(socials, "   ")))
	})

	b.section(viewstate.Skills, 0, func() {
		b.add(center.Render(headingStyle.Render("My Skills")))
		b.blank(1)
		for _, s := range page.Skills {
			accent, ok := accentColors[s.Accent]
			if !ok {
				accent = colorBlue
			}
			b.add(indent.Render(lipgloss.NewStyle().Foreground(accent).Render("■ ") + textStyle.Bold(true).Render(s.Title)))
			b.add(indent.Render("  " + mutedStyle.Width(inner-2).Render(s.Summary)))
			b.blank(1)
		}
	})

	b.section(viewstate.Projects, 0, func() {
		b.add(center.Render(headingStyle.Render("My Projects")))
		b.blank(1)
		cardWidth := min(inner, maxCardWidth)
		for i, p := range page.Projects {
			var cardVars map[string]string
			if i < len(vars) {
				cardVars = vars[i]
			}
			card := renderCard(p, cardWidth, cardVars)
			b.layout.cards = append(b.layout.cards, cardBox{
				line:   len(b.layout.lines),
				col:    pageMargin,
				width:  lipgloss.Width(card),
				height: lipgloss.Height(card),
			})
			b.add(indent.Render(card))
			b.blank(1)
		}
	})

	b.section(viewstate.About, 0, func() {
		b.add(center.Render(headingStyle.Render("About Me")))
		b.blank(1)
		for _, p := range page.Paragraphs() {
			b.add(indent.Render(textStyle.Width(inner).Render(p)))
			b.blank(1)
		}
	})

	b.section(viewstate.Contact, 0, func() {
		b.add(center.Render(headingStyle.Render(page.Contact.Heading)))
		b.blank(1)
		b.add(indent.Render(mutedStyle.Width(inner).Align(lipgloss.Center).Render(page.Contact.Blurb)))
		b.blank(1)
		b.add(center.Render(buttonStyle.Render("Contact Me")))
		b.add(center.Render(footerStyle.Render(page.MailtoURL())))
		b.blank(2)
		b.add(center.Render(footerStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), page.Name))))
	})

	return b.layout
}

func renderCard(p content.Project, width int, vars map[string]string) string {
	inner := max(width-4, 1)
	var body strings.Builder
	body.WriteString(textStyle.Bold(true).Render(p.Title))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Width(inner).Render(p.Description))
	body.WriteString("\n\n")
	body.WriteString(tagStyle.Render(strings.Join(p.Tech, " · ")))
	body.WriteString("\n\n")
	for _, line := range strings.Split(p.Code, "\n") {
		body.WriteString(codeStyle.Render(truncateRunes(line, inner)))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(lipgloss.NewStyle().Foreground(colorBlue).Render("View Project ↗"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(glowColor(vars)).
		Padding(0, 1).
		Width(width - 2).
		Render(body.String())
}

// glowColor maps the card's --mouse-x percentage onto the glow palette. The
// pointer outside the card leaves the border dim.
func glowColor(vars map[string]string) lipgloss.Color {
	x, ok := parsePercent(vars[viewstate.CardVarX])
	y, okY := parsePercent(vars[viewstate.CardVarY])
	if !ok || !okY || x < 0 || x > 100 || y < 0 || y > 100 {
		return colorDim
	}
	i := int(x / 100 * float64(len(cardGlow)))
	return cardGlow[min(i, len(cardGlow)-1)]
}

func parsePercent(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || !strings.HasSuffix(s, "%") {
		return 0, false
	}
	return v, true
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:max(n-1, 0)]) + "…"
}
