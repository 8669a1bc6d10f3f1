package domain

import "time"

// PostImage is a single image attached to a post item. The ID is used for
// de-duplication and caller references only, never for ordering.
type PostImage struct {
	ID   string
	Path string
}

// PostItem is one content unit inside a group. Content is a constrained HTML
// subset with every line wrapped in a paragraph tag.
type PostItem struct {
	ID      string
	Content string
	Images  []PostImage
}

// PostGroup is the unit of scheduling and mutation: one primary post plus the
// ordered thread/comment items that publish with it. All items share one
// integration and one publish date.
type PostGroup struct {
	GroupID        string
	OrganizationID string
	IntegrationID  string
	PublishDate    time.Time
	State          PostState
	Settings       map[string]any
	ReleaseURL     string
	Items          []PostItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Primary returns the main post of the group, the item at index 0.
func (g *PostGroup) Primary() *PostItem {
	if len(g.Items) == 0 {
		return nil
	}
	return &g.Items[0]
}

// Editable reports whether the group may still be mutated. Computed from the
// state, never stored.
func (g *PostGroup) Editable() bool {
	return g.State.Editable()
}
