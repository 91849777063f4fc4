/*
Package inspect renders the internals of sequence containers on a console,
for debugging and teaching purposes.

A segment tree is printed level by level, root first. Every node is centered
above the elements it aggregates. For the sum of [1, 2, 3, 4]:

	        {10}
	   {3}       {7}
	 {1}  {2}  {3}  {4}

Cell widths are computed from the display width of the nodes' string forms
(East Asian wide characters and grapheme clusters are handled), so payloads
with non-Latin string representations line up as well.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spella/algebra"
	"github.com/npillmayer/spella/sequences"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'spella'
func tracer() tracing.Trace {
	return tracing.Select("spella")
}

// DefaultWidth is the line width used when no terminal is attached.
const DefaultWidth = 65

// Config controls console rendering.
type Config struct {
	Width   int            // maximum line width in columns
	Color   bool           // colorize inner nodes and leaves
	Context *uax11.Context // context for display width; nil means Latin
	Inner   *color.Color   // color of inner nodes
	Leaf    *color.Color   // color of elements
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and enables colors.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		config.Context = uax11.ContextFromEnvironment()
		if w, _, err := term.GetSize(fd); err != nil || w <= 10 {
			config.Width = DefaultWidth
		} else {
			config.Width = w - 1
		}
	}
	config = config.normalized()
	tracer().Debugf("inspect: setting line width to %d en", config.Width)
	return config
}

func (cfg *Config) normalized() *Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Inner == nil {
		c.Inner = color.New(color.FgBlue)
	}
	if c.Leaf == nil {
		c.Leaf = color.New(color.FgRed, color.Bold)
	}
	return &c
}

var setupGraphemes sync.Once

// Render writes the levels of a segment tree to w. A nil config renders
// without colors at DefaultWidth.
//
// If the tree is too wide for the configured width, cells are narrowed and
// their contents truncated; lines never exceed cfg.Width columns.
func Render[M algebra.Monoid[M]](w io.Writer, tree *sequences.SegmentTree[M], cfg *Config) error {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	cfg = cfg.normalized()
	levels := tree.Levels()
	if len(levels) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	labels := make([][]string, len(levels))
	cell := 1
	for i, level := range levels {
		labels[i] = make([]string, len(level))
		for j, node := range level {
			labels[i][j] = fmt.Sprintf("%v", node)
			cell = max(cell, width(labels[i][j], cfg.Context)+1)
		}
	}
	slots := 1 << (len(levels) - 1) // leaf slots of the tree, including padding
	if slots*cell > cfg.Width {
		cell = max(cfg.Width/slots, 1)
		tracer().Debugf("inspect: tree of %d slots too wide, narrowing cells to %d", slots, cell)
	}
	for i, level := range labels {
		span := cell * (slots >> i)
		var line strings.Builder
		for j, label := range level {
			if (j+1)*span > cfg.Width {
				break
			}
			label = truncate(label, span-1, cfg.Context)
			pad := span - width(label, cfg.Context)
			left := pad / 2
			line.WriteString(strings.Repeat(" ", left))
			line.WriteString(paint(label, i == len(labels)-1, cfg))
			line.WriteString(strings.Repeat(" ", pad-left))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func paint(label string, isleaf bool, cfg *Config) string {
	if !cfg.Color || label == "" {
		return label
	}
	c := cfg.Inner
	if isleaf {
		c = cfg.Leaf
	}
	c.EnableColor()
	return c.Sprint(label)
}

// width returns the display width of s in console columns. Latin-1 text is
// one column per rune; anything else is measured by UAX #11.
func width(s string, context *uax11.Context) int {
	n := 0
	for _, r := range s {
		if r > unicode.MaxLatin1 {
			return uax11.StringWidth(grapheme.StringFromString(s), context)
		}
		n++
	}
	return n
}

// truncate shortens s until it fits into w columns.
func truncate(s string, w int, context *uax11.Context) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	for len(r) > 0 && width(string(r), context) > w {
		r = r[:len(r)-1]
	}
	return string(r)
}
