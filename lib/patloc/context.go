package patloc

import "sync"

// DefaultPage is the page name used when no page was set in the context.
const DefaultPage = "genericPage"

// PageContext carries the ambient "current page" name that navigation steps
// set and later resolution steps read when they don't name a page
// explicitly.
type PageContext struct {
	mx   sync.RWMutex
	page string
}

// Set records name as the current page.
func (pc *PageContext) Set(name string) {
	pc.mx.Lock()
	defer pc.mx.Unlock()
	pc.page = name
}

// Page returns the current page name, or DefaultPage when none was set.
func (pc *PageContext) Page() string {
	pc.mx.RLock()
	defer pc.mx.RUnlock()
	if pc.page == "" {
		return DefaultPage
	}
	return pc.page
}

// Clear resets the context.
func (pc *PageContext) Clear() {
	pc.mx.Lock()
	defer pc.mx.Unlock()
	pc.page = ""
}
