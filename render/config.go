package render

import (
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output of trees.
type Config struct {
	Width      int            // maximum line width in ‘en’s; 0 means unlimited
	Color      bool           // colorize keys and values
	Heights    bool           // print the height of every node
	KeyColor   *color.Color   // color for keys, if Color is set
	ValueColor *color.Color   // color for values, if Color is set
	Context    *uax11.Context // context for determining display widths
}

// DefaultConfig returns a configuration for uncolored output of unlimited width.
func DefaultConfig() *Config {
	return &Config{
		KeyColor:   color.New(color.FgBlue, color.Bold),
		ValueColor: color.New(color.FgGreen),
		Context:    uax11.LatinContext,
	}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and enables colored output.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.Width = w
		}
		config.Color = !color.NoColor
		config.Context = uax11.ContextFromEnvironment()
	}
	tracer().P("render", "console").Debugf("line width = %d, color = %v", config.Width, config.Color)
	return config
}

// ConfigFrom creates a Config from an application configuration. It reads
//
//	render.width     maximum line width (integer)
//	render.color     colored output (boolean)
//	render.heights   print node heights (boolean)
//
// Keys not set in conf keep their default values.
func ConfigFrom(conf schuko.Configuration) *Config {
	config := DefaultConfig()
	if conf == nil {
		return config
	}
	if conf.IsSet("render.width") {
		config.Width = max(0, conf.GetInt("render.width"))
	}
	if conf.IsSet("render.color") {
		config.Color = conf.GetBool("render.color")
	}
	if conf.IsSet("render.heights") {
		config.Heights = conf.GetBool("render.heights")
	}
	return config
}

func (config *Config) normalized() *Config {
	if config == nil {
		return DefaultConfig()
	}
	c := *config
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.KeyColor == nil {
		c.KeyColor = color.New(color.FgBlue, color.Bold)
	}
	if c.ValueColor == nil {
		c.ValueColor = color.New(color.FgGreen)
	}
	return &c
}

var setupGraphemes sync.Once

// displayWidth returns the number of ‘en’s s will occupy on a fixed-width console.
// Invalid UTF-8 sequences count as one replacement character each.
func displayWidth(s string, context *uax11.Context) int {
	if s == "" { // grapheme strings cannot be empty
		return 0
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
