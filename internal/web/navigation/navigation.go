// Package navigation carries per-page navigation state for templates.
package navigation

// Crumb represents a single breadcrumb link.
type Crumb struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation state handed to a page template.
type Context struct {
	ActiveSection string
	ActivePage    string
	Trail         []Crumb
	PageTitle     string
}

// New creates a new navigation context.
func New(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Trail:         make([]Crumb, 0),
	}
}

// AddCrumb appends a breadcrumb link to the trail.
func (c *Context) AddCrumb(title, url string, active bool) *Context {
	c.Trail = append(c.Trail, Crumb{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
