// Package language holds the fixed set of programming languages the
// commenter accepts, with their display labels and source file extensions.
package language

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Language describes one supported programming language.
type Language struct {
	Tag        string   `json:"tag"`
	Label      string   `json:"label"`
	Extensions []string `json:"extensions"`
}

// Default is the language preselected in the UI.
const Default = "python"

var supported = []Language{
	{Tag: "python", Label: "Python", Extensions: []string{".py"}},
	{Tag: "javascript", Label: "JavaScript", Extensions: []string{".js"}},
	{Tag: "typescript", Label: "TypeScript", Extensions: []string{".ts"}},
	{Tag: "java", Label: "Java", Extensions: []string{".java"}},
	{Tag: "c++", Label: "C++", Extensions: []string{".cpp"}},
	{Tag: "c#", Label: "C#", Extensions: []string{".cs"}},
	{Tag: "go", Label: "Go", Extensions: []string{".go"}},
	{Tag: "ruby", Label: "Ruby", Extensions: []string{".rb"}},
}

// plainTextExt is accepted by the file picker but maps to no language.
const plainTextExt = ".txt"

// All returns the supported languages in display order.
func All() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Lookup finds a language by tag or label, ignoring case.
func Lookup(name string) (Language, bool) {
	// A Caser is stateful and must not be shared between goroutines.
	folder := cases.Fold()
	key := folder.String(strings.TrimSpace(name))
	if key == "" {
		return Language{}, false
	}
	for _, l := range supported {
		if folder.String(l.Tag) == key || folder.String(l.Label) == key {
			return l, true
		}
	}
	return Language{}, false
}

// FromExtension infers the language of a file from its extension.
func FromExtension(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Language{}, false
	}
	for _, l := range supported {
		for _, e := range l.Extensions {
			if e == ext {
				return l, true
			}
		}
	}
	return Language{}, false
}

// AcceptList returns the value for an HTML file input accept attribute.
func AcceptList() string {
	var exts []string
	for _, l := range supported {
		exts = append(exts, l.Extensions...)
	}
	exts = append(exts, plainTextExt)
	return strings.Join(exts, ",")
}
