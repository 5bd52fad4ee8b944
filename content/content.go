// Package content holds the portfolio copy: names, skills, projects and the
// about text. It is configuration data for the page, loaded from YAML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Parse.
var ErrInvalid = errors.New("invalid content")

//go:embed default.yaml
var defaultYAML []byte

type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,link"`
	Icon  string `yaml:"icon"`
}

type Skill struct {
	Title   string `yaml:"title" validate:"required"`
	Summary string `yaml:"summary"`
	Icon    string `yaml:"icon"`
	Accent  string `yaml:"accent"`
}

// Project is one entry in the projects grid. Each project renders as a card.
type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech" validate:"dive,required"`
	Code        string   `yaml:"code"`
	Link        string   `yaml:"link" validate:"required,link"`
}

type Contact struct {
	Heading string `yaml:"heading" validate:"required"`
	Blurb   string `yaml:"blurb"`
	Email   string `yaml:"email" validate:"required,email"`
}

// Content is the whole page copy.
type Content struct {
	Name      string    `yaml:"name" validate:"required"`
	Tagline   string    `yaml:"tagline" validate:"required"`
	Languages []string  `yaml:"languages" validate:"dive,required"`
	Socials   []Link    `yaml:"socials" validate:"dive"`
	Skills    []Skill   `yaml:"skills" validate:"dive"`
	Projects  []Project `yaml:"projects" validate:"min=1,dive"`
	About     string    `yaml:"about" validate:"required"`
	Contact   Contact   `yaml:"contact"`
}

// Tag is a language badge with its staggered animation delay.
type Tag struct {
	Name  string
	Delay string
}

// Default returns the copy compiled into the binary.
func Default() (*Content, error) {
	return Parse(defaultYAML)
}

// Load reads a YAML file. An empty path selects the embedded default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := getValidator().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return &c, nil
}

// LanguageTags pairs each language with a delay of 0.2s per position.
func (c *Content) LanguageTags() []Tag {
	tags := make([]Tag, len(c.Languages))
	for i, lang := range c.Languages {
		delay := float64(i*2) / 10
		tags[i] = Tag{Name: lang, Delay: strconv.FormatFloat(delay, 'f', -1, 64) + "s"}
	}
	return tags
}

// AboutHTML renders the about text as HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func (c *Content) AboutHTML() template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(c.About), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(c.About)) //nolint:gosec // escaped above
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark output with unsafe HTML disabled
}

// Paragraphs splits the about text on blank lines for plain-text surfaces.
func (c *Content) Paragraphs() []string {
	var out []string
	for _, p := range bytes.Split([]byte(c.About), []byte("\n\n")) {
		p = bytes.Join(bytes.Fields(p), []byte(" "))
		if len(p) > 0 {
			out = append(out, string(p))
		}
	}
	return out
}

// MailtoURL is the contact button target.
func (c *Content) MailtoURL() string {
	return "mailto:" + c.Contact.Email
}
