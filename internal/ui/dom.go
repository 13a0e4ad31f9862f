package ui

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element IDs the page contract relies on.
const (
	LoginLinkID   = "login-link"
	PriceFilterID = "price-filter"
	PlacesListID  = "places-list"

	PlaceCardClass = "place-card"
)

// Document is the part of a page the controller reads and writes.
type Document interface {
	Cookie() string
	// Find returns the elements matching a CSS selector; empty when none match.
	Find(selector string) *goquery.Selection
	// OnChange sets the single change handler of element id, replacing any previous one.
	OnChange(id string, fn func())
}

// ByID finds element id in doc. Check Length() for presence.
func ByID(doc Document, id string) *goquery.Selection { return doc.Find("#" + id) }

// SetHidden toggles inline display the way a browser script would.
func SetHidden(s *goquery.Selection, hidden bool) {
	if hidden {
		s.SetAttr("style", "display: none")
		return
	}
	s.SetAttr("style", "display: block")
}

func IsHidden(s *goquery.Selection) bool { return s.AttrOr("style", "") == "display: none" }

// SelectedValue is the value of the selected option of a select, or "" when none is selected.
func SelectedValue(sel *goquery.Selection) string {
	return sel.Find("option[selected]").First().AttrOr("value", "")
}

// Element builds a bare element node, optionally carrying an id.
func Element(tag, id string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	if id != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
	}
	return n
}

func textElement(tag, text string) *html.Node {
	n := Element(tag, "")
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// Tree is an in-memory Document for one page load.
type Tree struct {
	cookie   string
	doc      *goquery.Document
	onChange map[string]func()
}

// NewTree builds a document whose body holds the given elements.
func NewTree(cookie string, body ...*html.Node) *Tree {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := Element("html", "")
	bodyEl := Element("body", "")
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(bodyEl)
	for _, n := range body {
		bodyEl.AppendChild(n)
	}
	return &Tree{
		cookie:   cookie,
		doc:      goquery.NewDocumentFromNode(root),
		onChange: map[string]func(){},
	}
}

// Skeleton returns the three elements the places page is built around.
func Skeleton() []*html.Node {
	link := textElement("a", "Login")
	link.Attr = []html.Attribute{{Key: "id", Val: LoginLinkID}, {Key: "href", Val: "/login"}}
	return []*html.Node{link, Element("select", PriceFilterID), Element("div", PlacesListID)}
}

// NewPage is NewTree over Skeleton.
func NewPage(cookie string) *Tree { return NewTree(cookie, Skeleton()...) }

func (t *Tree) Cookie() string { return t.cookie }

func (t *Tree) Find(selector string) *goquery.Selection { return t.doc.Find(selector) }

func (t *Tree) OnChange(id string, fn func()) { t.onChange[id] = fn }

// Select marks the option carrying value as selected and fires the change handler of id.
// It reports false, and changes nothing, when id is missing or has no such option.
func (t *Tree) Select(id, value string) bool {
	opts := ByID(t, id).Find("option")
	match := opts.FilterFunction(func(_ int, o *goquery.Selection) bool {
		v, ok := o.Attr("value")
		return ok && v == value
	})
	if match.Length() == 0 {
		return false
	}
	opts.RemoveAttr("selected")
	match.First().SetAttr("selected", "")
	if fn := t.onChange[id]; fn != nil {
		fn()
	}
	return true
}
