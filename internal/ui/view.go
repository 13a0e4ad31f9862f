package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"hbnb_web/internal/domain"
)

// AllPrices is the filter value that disables the price ceiling.
const AllPrices = "All"

var priceCeilings = []float64{10, 50, 100}

type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

// PriceOptions returns the fixed filter choices: each ceiling, then All.
func PriceOptions() []Option {
	out := make([]Option, 0, len(priceCeilings)+1)
	for _, p := range priceCeilings {
		v := domain.FormatPrice(p)
		out = append(out, Option{Value: v, Label: "$" + v})
	}
	return append(out, Option{Value: AllPrices, Label: AllPrices})
}

// Visible reports whether a card priced price passes the selected ceiling.
// A ceiling that is not a number lets nothing through.
func Visible(price float64, selected string) bool {
	if selected == AllPrices {
		return true
	}
	ceiling, err := strconv.ParseFloat(strings.TrimSpace(selected), 64)
	if err != nil || math.IsNaN(price) {
		return false
	}
	return price <= ceiling
}

// VisibleSet applies Visible to each place, in order.
func VisibleSet(places []domain.Place, selected string) []bool {
	out := make([]bool, len(places))
	for i, p := range places {
		out[i] = Visible(p.PricePerNight, selected)
	}
	return out
}

// OptionNode renders o as an <option> element.
func OptionNode(o Option) *html.Node {
	n := textElement("option", o.Label)
	n.Attr = append(n.Attr, html.Attribute{Key: "value", Val: o.Value})
	return n
}

// CardNode renders one place as a .place-card element tagged with its price.
func CardNode(p domain.Place) *html.Node {
	price := domain.FormatPrice(p.PricePerNight)
	card := Element("div", "")
	card.Attr = append(card.Attr,
		html.Attribute{Key: "class", Val: PlaceCardClass},
		html.Attribute{Key: "data-price", Val: price},
	)
	for _, c := range []*html.Node{
		textElement("h3", p.Name),
		textElement("p", p.Description),
		textElement("p", "Location: "+p.City+", "+p.Country),
		textElement("p", "Price: $"+price),
	} {
		card.AppendChild(c)
	}
	return card
}

// Card is the flattened form of a rendered .place-card.
type Card struct {
	Price  string   `json:"price"`
	Lines  []string `json:"lines"`
	Hidden bool     `json:"hidden"`
}

// PageView is a read-only projection of a places page, ready for templating.
type PageView struct {
	LoginVisible bool     `json:"login_visible"`
	LoginHref    string   `json:"login_href,omitempty"`
	Options      []Option `json:"options"`
	Selected     string   `json:"selected,omitempty"`
	Cards        []Card   `json:"places"`
}

// View projects the document into a PageView. Missing elements yield zero values.
func (t *Tree) View() PageView {
	var v PageView
	if ll := ByID(t, LoginLinkID); ll.Length() > 0 {
		v.LoginVisible = !IsHidden(ll)
		v.LoginHref = ll.AttrOr("href", "")
	}
	if sel := ByID(t, PriceFilterID); sel.Length() > 0 {
		v.Selected = SelectedValue(sel)
		sel.Find("option").Each(func(_ int, o *goquery.Selection) {
			_, selected := o.Attr("selected")
			v.Options = append(v.Options, Option{Value: o.AttrOr("value", ""), Label: o.Text(), Selected: selected})
		})
	}
	if list := ByID(t, PlacesListID); list.Length() > 0 {
		v.Cards = []Card{}
		list.Children().Filter("." + PlaceCardClass).Each(func(_ int, c *goquery.Selection) {
			card := Card{Price: c.AttrOr("data-price", ""), Hidden: IsHidden(c)}
			c.Children().Each(func(_ int, line *goquery.Selection) {
				card.Lines = append(card.Lines, line.Text())
			})
			v.Cards = append(v.Cards, card)
		})
	}
	return v
}
