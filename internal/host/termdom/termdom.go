// Package termdom is a terminal-backed host document built on tcell.
// The node tree renders as an indented outline; Tab moves focus across
// clickable nodes and Enter fires their listeners, which is enough to
// drive the click pipeline end to end without a browser.
package termdom

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/domforge/domforge/internal/host"
)

// Term owns the tcell screen and the node tree.
type Term struct {
	screen tcell.Screen
	root   *Node
	title  string
	focus  int
}

func New() (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termdom: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termdom: init screen: %w", err)
	}
	t := &Term{screen: screen}
	t.root = &Node{term: t, tag: "#root"}
	return t, nil
}

func (t *Term) Root() *Node {
	return t.root
}

func (t *Term) CreateElement(tag string) (host.Node, error) {
	if tag == "" {
		return nil, fmt.Errorf("termdom: empty tag")
	}
	return &Node{term: t, tag: tag}, nil
}

// SetTitle implements host.Window; the title renders as the screen header.
func (t *Term) SetTitle(title string) {
	t.title = title
}

// Fini restores the terminal. Safe to call once at shutdown.
func (t *Term) Fini() {
	t.screen.Fini()
}

// FocusNext moves focus to the next clickable node.
func (t *Term) FocusNext() {
	n := len(t.clickables())
	if n > 0 {
		t.focus = (t.focus + 1) % n
	}
}

// ClickFocused fires the focused node's listeners.
func (t *Term) ClickFocused() {
	cs := t.clickables()
	if t.focus < len(cs) {
		cs[t.focus].fire()
	}
}

// PollEvent blocks for the next terminal event.
func (t *Term) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Present redraws the whole tree.
func (t *Term) Present() {
	t.screen.Clear()
	row := 0
	if t.title != "" {
		drawText(t.screen, 0, row, tcell.StyleDefault.Bold(true), t.title)
		row += 2
	}
	focused := t.focusedNode()
	for _, c := range t.root.children {
		row = t.draw(c, 1, row, focused)
	}
	t.screen.Show()
}

func (t *Term) draw(n *Node, depth, row int, focused *Node) int {
	style := tcell.StyleDefault
	if n.hasClass("selected") {
		style = style.Bold(true).Foreground(tcell.ColorGreen)
	}
	if n == focused {
		style = style.Reverse(true)
	}
	label := "<" + n.tag + ">"
	if n.text != "" {
		label += " " + n.text
	}
	drawText(t.screen, depth*2, row, style, label)
	row++
	for _, c := range n.children {
		row = t.draw(c, depth+1, row, focused)
	}
	return row
}

func (t *Term) focusedNode() *Node {
	cs := t.clickables()
	if t.focus < len(cs) {
		return cs[t.focus]
	}
	return nil
}

func (t *Term) clickables() []*Node {
	var out []*Node
	t.root.collectClickable(&out)
	return out
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// Node is one element in the terminal tree.
type Node struct {
	term      *Term
	tag       string
	text      string
	attrs     map[string]string
	classes   []string
	parent    *Node
	children  []*Node
	listeners []func()
}

func (n *Node) Tag() string { return n.tag }

func (n *Node) AppendChild(child host.Node) {
	c := child.(*Node)
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) RemoveChild(child host.Node) {
	c := child.(*Node)
	if c.parent != n {
		return
	}
	n.detach(c)
	c.parent = nil
}

func (n *Node) ReplaceChild(newChild, oldChild host.Node) {
	nc := newChild.(*Node)
	oc := oldChild.(*Node)
	for i, c := range n.children {
		if c == oc {
			if nc.parent != nil {
				nc.parent.detach(nc)
			}
			n.children[i] = nc
			nc.parent = n
			oc.parent = nil
			return
		}
	}
}

func (n *Node) Children() []host.Node {
	out := make([]host.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) SetText(text string) {
	n.text = text
}

func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string, 4)
	}
	n.attrs[name] = value
}

func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

func (n *Node) SetClasses(classes []string) {
	n.classes = append(n.classes[:0], classes...)
}

func (n *Node) AddClickListener(fn func()) {
	n.listeners = append(n.listeners, fn)
}

func (n *Node) ClearClickListeners() {
	n.listeners = nil
}

func (n *Node) fire() {
	for _, fn := range n.listeners {
		fn()
	}
}

func (n *Node) hasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) collectClickable(out *[]*Node) {
	if len(n.listeners) > 0 {
		*out = append(*out, n)
	}
	for _, c := range n.children {
		c.collectClickable(out)
	}
}

func (n *Node) detach(c *Node) {
	for i, cur := range n.children {
		if cur == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
