package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MetaSeparator joins the parts of a resource's meta line
const MetaSeparator = " · "

// ResourceKind is the media type of a library resource
type ResourceKind string

const (
	KindVideo    ResourceKind = "video"
	KindAudio    ResourceKind = "audio"
	KindDocument ResourceKind = "document"
)

// Category groups resources on the home screen
type Category struct {
	ID    string `mapstructure:"id"`
	Title string `mapstructure:"title"`
	Icon  string `mapstructure:"icon"`
}

// Resource is a downloadable/viewable library item
type Resource struct {
	ID       string       `mapstructure:"id"`
	Title    string       `mapstructure:"title"`
	Category string       `mapstructure:"category"`
	Kind     ResourceKind `mapstructure:"kind"`
	Size     string       `mapstructure:"size"`
	Duration string       `mapstructure:"duration"`
}

// Meta returns the secondary line shown under the title, e.g. "45 MB · Video · 12 min"
func (r Resource) Meta() string {
	parts := make([]string, 0, 3)
	if r.Size != "" {
		parts = append(parts, r.Size)
	}
	if r.Kind != "" {
		parts = append(parts, capitalize(string(r.Kind)))
	}
	if r.Duration != "" {
		parts = append(parts, r.Duration)
	}
	return strings.Join(parts, MetaSeparator)
}

// SizeLabel returns the first segment of the meta line
func (r Resource) SizeLabel() string {
	return SizeFromMeta(r.Meta())
}

// SizeFromMeta extracts the size part from a meta line
func SizeFromMeta(meta string) string {
	size, _, _ := strings.Cut(meta, MetaSeparator)
	return strings.TrimSpace(size)
}

// GetDisplayTitle returns the title, falling back to the id
func (r Resource) GetDisplayTitle() string {
	if strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	return r.ID
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
