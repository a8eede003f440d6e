// Package memdom is an in-memory host document. It backs the test suite
// and headless runs: every mutating call increments a counter so tests
// can assert that an idle flush performs zero host mutations.
package memdom

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/domforge/domforge/internal/host"
)

// DOM owns a node tree rooted at a synthetic "#root" container.
type DOM struct {
	root      *Node
	title     string
	mutations int
}

func New() *DOM {
	d := &DOM{}
	d.root = &Node{dom: d, tag: "#root"}
	return d
}

// Root returns the mount point for root entities.
func (d *DOM) Root() *Node {
	return d.root
}

// CreateElement allocates a detached node. Element creation counts as a
// host mutation.
func (d *DOM) CreateElement(tag string) (host.Node, error) {
	if tag == "" {
		return nil, fmt.Errorf("memdom: empty tag")
	}
	d.mutations++
	return &Node{dom: d, tag: tag}, nil
}

// SetTitle implements host.Window.
func (d *DOM) SetTitle(title string) {
	d.title = title
	d.mutations++
}

func (d *DOM) Title() string {
	return d.title
}

// Mutations returns the total count of host mutations since New.
func (d *DOM) Mutations() int {
	return d.mutations
}

// Externals bundles this DOM into the capability set a World expects.
func (d *DOM) Externals(log *zap.Logger) host.Externals {
	return host.Externals{
		Document: d,
		Root:     d.root,
		Window:   d,
		Log:      log,
	}
}

// Node is a single in-memory element.
type Node struct {
	dom       *DOM
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
	n.dom.mutations++
}

func (n *Node) RemoveChild(child host.Node) {
	c := child.(*Node)
	if c.parent != n {
		return
	}
	n.detach(c)
	c.parent = nil
	n.dom.mutations++
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
			n.dom.mutations++
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
	n.dom.mutations++
}

func (n *Node) Text() string { return n.text }

func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string, 4)
	}
	n.attrs[name] = value
	n.dom.mutations++
}

func (n *Node) RemoveAttribute(name string) {
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	n.dom.mutations++
}

func (n *Node) Attr(name string) string {
	return n.attrs[name]
}

func (n *Node) SetClasses(classes []string) {
	n.classes = append(n.classes[:0], classes...)
	n.dom.mutations++
}

func (n *Node) ClassList() []string {
	return append([]string(nil), n.classes...)
}

func (n *Node) AddClickListener(fn func()) {
	n.listeners = append(n.listeners, fn)
	n.dom.mutations++
}

func (n *Node) ClearClickListeners() {
	if len(n.listeners) == 0 {
		return
	}
	n.listeners = nil
	n.dom.mutations++
}

// Listeners returns the number of wired click listeners.
func (n *Node) Listeners() int {
	return len(n.listeners)
}

// Click simulates a host click event on this node.
func (n *Node) Click() {
	for _, fn := range n.listeners {
		fn()
	}
}

// FirstByTag walks the subtree depth-first and returns the first node
// with the given tag, or nil.
func (n *Node) FirstByTag(tag string) *Node {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
		if found := c.FirstByTag(tag); found != nil {
			return found
		}
	}
	return nil
}

// AllByTag collects every node with the given tag, depth-first.
func (n *Node) AllByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.tag == tag {
			out = append(out, c)
		}
		out = append(out, c.AllByTag(tag)...)
	}
	return out
}

// Render dumps the subtree as indented HTML-ish text, for tests and the
// -dry demo mode.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b, 0)
	return b.String()
}

func (n *Node) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(n.tag)
	if len(n.classes) > 0 {
		fmt.Fprintf(b, " class=%q", strings.Join(n.classes, " "))
	}
	if len(n.attrs) > 0 {
		keys := make([]string, 0, len(n.attrs))
		for k := range n.attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%q", k, n.attrs[k])
		}
	}
	b.WriteString(">")
	if n.text != "" {
		b.WriteString(n.text)
	}
	if len(n.children) > 0 {
		b.WriteByte('\n')
		for _, c := range n.children {
			c.render(b, depth+1)
		}
		b.WriteString(indent)
	}
	fmt.Fprintf(b, "</%s>\n", n.tag)
}

func (n *Node) detach(c *Node) {
	for i, cur := range n.children {
		if cur == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
