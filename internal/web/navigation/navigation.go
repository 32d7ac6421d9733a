// Package navigation builds the admin menu state and breadcrumbs.
package navigation

// Admin sections and pages.
const (
	SectionContent  = "content"
	SectionSettings = "settings"

	PageContentList = "content-list"
	PageReading     = "reading"
)

// MenuEntry is one link of the admin menu.
type MenuEntry struct {
	Title   string
	URL     string
	Section string
	Page    string
}

// Menu is the admin sidebar in display order.
var Menu = []MenuEntry{ //nolint:gochecknoglobals
	{Title: "Content", URL: "/admin/content", Section: SectionContent, Page: PageContentList},
	{Title: "Reading", URL: "/admin/settings/reading", Section: SectionSettings, Page: PageReading},
}

// Crumb is a single breadcrumb link.
type Crumb struct {
	Title  string
	URL    string
	Active bool
}

// Context is the navigation state of an admin page.
type Context struct {
	PageTitle     string
	ActiveSection string
	ActivePage    string
	Crumbs        []Crumb
}

// ForPage returns the context of the menu page identified by section and page. The
// breadcrumbs start at the admin root and end at the page itself.
func ForPage(section, page string) *Context {
	ctx := &Context{
		ActiveSection: section,
		ActivePage:    page,
		Crumbs:        []Crumb{{Title: "Admin", URL: "/admin/content"}},
	}

	for _, e := range Menu {
		if e.Section == section && e.Page == page {
			ctx.PageTitle = e.Title
			ctx.Crumbs = append(ctx.Crumbs, Crumb{Title: e.Title, URL: e.URL, Active: true})

			break
		}
	}

	return ctx
}

// IsActive reports whether entry is the current page.
func (c *Context) IsActive(entry MenuEntry) bool {
	return c.ActiveSection == entry.Section && c.ActivePage == entry.Page
}

// Entries returns the menu for templates.
func (c *Context) Entries() []MenuEntry {
	return Menu
}
