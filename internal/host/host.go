// Package host defines the capability surface the engine needs from its
// host environment. The engine never touches a concrete document type;
// everything flows through these interfaces, injected once at World
// construction. memdom provides an in-memory implementation, termdom a
// terminal-backed one.
package host

import (
	"errors"

	"go.uber.org/zap"
)

// Document creates element nodes. The returned node is detached; callers
// attach it with AppendChild.
type Document interface {
	CreateElement(tag string) (Node, error)
}

// Node is the handle contract for a single element in the host tree.
// Mutators are synchronous and take effect immediately.
type Node interface {
	Tag() string
	AppendChild(child Node)
	RemoveChild(child Node)
	ReplaceChild(newChild, oldChild Node)
	Children() []Node
	SetText(text string)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	SetClasses(classes []string)
	AddClickListener(fn func())
	ClearClickListeners()
}

// Window covers host services outside the document tree.
type Window interface {
	SetTitle(title string)
}

// Externals is the capability set a World is constructed with. The World
// references these, it does not own them. Log stands in for the host
// console; a nil Log is replaced with a no-op logger.
type Externals struct {
	Document Document
	Root     Node
	Window   Window
	Log      *zap.Logger
}

// Validate reports whether the required capabilities are present.
// Window and Log are optional.
func (e Externals) Validate() error {
	if e.Document == nil {
		return errors.New("externals: Document is required")
	}
	if e.Root == nil {
		return errors.New("externals: Root is required")
	}
	return nil
}

// Logger returns Log, or a no-op logger when none was injected.
func (e Externals) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}
