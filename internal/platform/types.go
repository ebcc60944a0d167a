package platform

// ListOf wraps a slice of borrowed handles as an ElementList. release runs
// once on the first Release call and may be nil.
func ListOf(items []Element, release func()) ElementList {
	return &sliceList{items: items, release: release}
}

type sliceList struct {
	items   []Element
	release func()
}

func (l *sliceList) Elements() []Element { return l.items }

func (l *sliceList) Release() {
	if l.release != nil {
		l.release()
		l.release = nil
	}
	l.items = nil
}

// ReleaseAll releases every element in els.
func ReleaseAll(els []Element) {
	for _, el := range els {
		if el != nil {
			el.Release()
		}
	}
}
