// Package layout builds the static component tree of the dashboard page
// and renders it to HTML.
package layout

import (
	"povdash/internal/models"
)

// Component is one node of the page tree. The same tree is rendered to
// HTML and served as JSON.
type Component struct {
	Type     string       `json:"type"`
	ID       string       `json:"id,omitempty"`
	Text     string       `json:"text,omitempty"`
	Props    *Props       `json:"props,omitempty"`
	Children []*Component `json:"children,omitempty"`
}

// Props holds the attributes of the few component types that have any.
type Props struct {
	Options []models.Option `json:"options,omitempty"`
	Value   string          `json:"value,omitempty"`
	Label   string          `json:"label,omitempty"`
	Href    string          `json:"href,omitempty"`
}

func node(typ string, children ...*Component) *Component {
	return &Component{Type: typ, Children: children}
}

func Container(children ...*Component) *Component { return node("container", children...) }
func Row(children ...*Component) *Component       { return node("row", children...) }
func Col(children ...*Component) *Component       { return node("col", children...) }
func Ul(children ...*Component) *Component        { return node("ul", children...) }
func Br() *Component                              { return node("br") }

func H1(text string) *Component { return &Component{Type: "h1", Text: text} }
func H2(text string) *Component { return &Component{Type: "h2", Text: text} }
func H3(text string) *Component { return &Component{Type: "h3", Text: text} }

// Li is a list item; text comes before any children.
func Li(text string, children ...*Component) *Component {
	return &Component{Type: "li", Text: text, Children: children}
}

func A(text, href string) *Component {
	return &Component{Type: "a", Text: text, Props: &Props{Href: href}}
}

// Div is an addressable container that callbacks can write into.
func Div(id string, children ...*Component) *Component {
	return &Component{Type: "div", ID: id, Children: children}
}

// Dropdown is a single-select control. An empty value means no selection.
func Dropdown(id string, options []models.Option, value string) *Component {
	return &Component{
		Type:  "dropdown",
		ID:    id,
		Props: &Props{Options: options, Value: value},
	}
}

// Graph is a placeholder that callbacks fill with a figure.
func Graph(id string) *Component {
	return &Component{Type: "graph", ID: id}
}

func Tabs(tabs ...*Component) *Component { return node("tabs", tabs...) }

func Tab(label string, children ...*Component) *Component {
	return &Component{Type: "tab", Props: &Props{Label: label}, Children: children}
}

// Options turns plain values into dropdown entries labelled by themselves.
func Options(values []string) []models.Option {
	out := make([]models.Option, len(values))
	for i, v := range values {
		out[i] = models.Option{Label: v, Value: v}
	}
	return out
}

// Walk visits c and its descendants depth first.
func Walk(c *Component, fn func(*Component)) {
	if c == nil {
		return
	}
	fn(c)
	for _, child := range c.Children {
		Walk(child, fn)
	}
}

// IDs collects every component ID in the tree.
func IDs(c *Component) map[string]string {
	ids := make(map[string]string)
	Walk(c, func(n *Component) {
		if n.ID != "" {
			ids[n.ID] = n.Type
		}
	})
	return ids
}
