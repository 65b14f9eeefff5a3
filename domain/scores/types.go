package scores

import (
	"regexp"
	"strings"
)

// MaxEntries is the number of data rows read after the header row
const MaxEntries = 4

// Color is a presentation-only card color class
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGray   Color = "gray"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Palette is cycled by entry index
var Palette = [...]Color{ColorBlue, ColorGray, ColorYellow, ColorRed}

// Direction is the active sort direction of a board
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// InitialDirection is the direction a freshly mounted board starts in
const InitialDirection = Descending

// Flip returns the other direction
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Row is one decoded spreadsheet data row
type Row struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Entry is one displayed hero score card
type Entry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Color Color   `json:"color"`
}

// Logo returns the image path for the entry
func (e Entry) Logo() string {
	return LogoPath(e.Name)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// LogoPath derives "/<lower-cased-name-with-hyphens>.png"; the file is not checked
func LogoPath(name string) string {
	return "/" + whitespaceRun.ReplaceAllString(strings.ToLower(name), "-") + ".png"
}

// BackgroundPath is the fixed page background image
const BackgroundPath = "/bg-dc.jpg"
