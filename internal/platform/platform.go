package platform

import "context"

// Element is an opaque handle to a foreign accessibility element.
//
// Handles come in two kinds. Owned handles are returned by
// Accessibility.CreateApplication and Retain and must be released by the
// holder. Borrowed handles are the items of an ElementList; they stay valid
// until the list is released and Release on them is a no-op.
type Element interface {
	// Retain returns a new owned reference to the same element.
	Retain() Element
	// Release drops an owned reference. It is safe to call more than once.
	Release()
}

// ElementList is an owned sequence of borrowed element handles.
type ElementList interface {
	Elements() []Element
	Release()
}

// Accessibility is the native accessibility binding. All calls block on the
// OS and none of them can be cancelled.
type Accessibility interface {
	// CreateApplication returns an owned root element for the process.
	CreateApplication(pid int32) (Element, error)

	// StringAttribute reads a string-valued attribute such as AXRole.
	// ok is false when the attribute is absent or not a string.
	StringAttribute(el Element, name string) (value string, ok bool)

	// ElementsAttribute reads an element-array attribute such as AXChildren.
	// ok is false when the attribute is absent or not an array.
	ElementsAttribute(el Element, name string) (list ElementList, ok bool)

	// ActionNames lists the raw action descriptors of el.
	ActionNames(el Element) (actions []string, ok bool)

	// PerformAction invokes one action and reports whether the OS accepted it.
	PerformAction(el Element, action string) bool
}

// ProcessDirectory finds running processes.
type ProcessDirectory interface {
	// FindByExactName returns the pid of a process whose name equals name.
	FindByExactName(ctx context.Context, name string) (pid int32, ok bool, err error)
}
