// Package display renders panel state to a terminal. It stands in for the
// page the panels drive: field values and result markup buffer silently and
// only print once the results block is revealed, so a failed cycle leaves
// nothing on screen.
package display

import (
	"fmt"
	"io"
	"sync"
)

// View is the results block of a panel. Fields registered on it print in
// registration order when the view is revealed.
type View struct {
	mu       sync.Mutex
	w        io.Writer
	fields   []*TextField
	markup   string
	revealed bool
}

func NewView(w io.Writer) *View {
	return &View{w: w}
}

// Field registers a labelled read-out on the view and returns it.
func (v *View) Field(name string) *TextField {
	v.mu.Lock()
	defer v.mu.Unlock()

	field := &TextField{name: name}
	v.fields = append(v.fields, field)

	return field
}

func (v *View) SetMarkup(markup string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.markup = markup
}

// Reveal prints the current field values and the rendered result markup.
func (v *View) Reveal() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.revealed = true

	fmt.Fprintln(v.w)
	for _, field := range v.fields {
		if text := field.snapshot(); text != "" {
			fmt.Fprintf(v.w, "%s: %s\n", field.name, text)
		}
	}

	if rendered := RenderMarkup(v.markup); rendered != "" {
		fmt.Fprintln(v.w, rendered)
	}
}

// Hide marks the view hidden without printing anything.
func (v *View) Hide() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.revealed = false
}

// ScrollIntoView separates the revealed block from whatever follows it.
func (v *View) ScrollIntoView() {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintln(v.w)
}

func (v *View) Revealed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.revealed
}

// TextField is a single labelled value on a View.
type TextField struct {
	mu   sync.Mutex
	name string
	text string
}

func (f *TextField) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.text = text
}

func (f *TextField) snapshot() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.text
}

// Control is the trigger of a panel. The terminal keeps its state so the
// prompt can reflect a running cycle; it prints nothing itself.
type Control struct {
	mu      sync.Mutex
	label   string
	enabled bool
}

func NewControl(label string) *Control {
	return &Control{label: label, enabled: true}
}

func (c *Control) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = enabled
}

func (c *Control) SetLabel(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.label = label
}

func (c *Control) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.label
}

func (c *Control) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.enabled
}

// Selector holds the city the user picked.
type Selector struct {
	mu    sync.Mutex
	value string
}

func NewSelector(value string) *Selector {
	return &Selector{value: value}
}

func (s *Selector) Select(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
}

func (s *Selector) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}
