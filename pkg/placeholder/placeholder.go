// Package placeholder renders the themed SVG thumbnails served under
// /api/placeholder/:width/:height.
package placeholder

import (
	"bytes"
	_ "embed"
	"strconv"
	"text/template"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 225
	MaxSide       = 4096
)

type Theme struct {
	From, To string
	Emoji    string
	Label    string
}

var themes = [...]Theme{
	{From: "#667eea", To: "#764ba2", Emoji: "🛹", Label: "Skateboard Tricks"},
	{From: "#f093fb", To: "#f5576c", Emoji: "🚴", Label: "Mountain Biking"},
	{From: "#4facfe", To: "#00f2fe", Emoji: "🛴", Label: "BMX Stunts"},
	{From: "#43e97b", To: "#38f9d7", Emoji: "🏄", Label: "Longboarding"},
}

//go:embed placeholder.svg.tmpl
var svgSource string

var svgTemplate = template.Must(template.New("placeholder").Parse(svgSource))

// Size parses width and height path values. Non-numeric input falls back to
// the default size; numbers are clamped to [1, MaxSide].
func Size(width, height string) (int, int) {
	w, errW := strconv.Atoi(width)
	h, errH := strconv.Atoi(height)
	if errW != nil || errH != nil {
		return DefaultWidth, DefaultHeight
	}
	return clamp(w), clamp(h)
}

func clamp(n int) int {
	return min(max(n, 1), MaxSide)
}

// ThemeFor picks the theme for a size; equal sizes always get the same theme.
func ThemeFor(width, height int) Theme {
	return themes[(width+height)%len(themes)]
}

// Render returns the SVG document for the given size.
func Render(width, height int) ([]byte, error) {
	var buf bytes.Buffer
	err := svgTemplate.Execute(&buf, struct {
		Width, Height int
		Theme         Theme
	}{width, height, ThemeFor(width, height)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
