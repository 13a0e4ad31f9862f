package app

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"hbnb_web/internal/domain"
	"hbnb_web/internal/ui"
)

type State int

const (
	Unauthenticated State = iota
	Loading
	Loaded
	FetchFailed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case FetchFailed:
		return "fetch_failed"
	}
	return "unknown"
}

// Controller drives one page load: auth check, fetch, filter, render.
// It is not safe for concurrent use; build one per document.
type Controller struct {
	api         domain.PlacesAPI
	doc         ui.Document
	tokenCookie string
	log         zerolog.Logger

	places []domain.Place
	state  State
}

func NewController(api domain.PlacesAPI, doc ui.Document, tokenCookie string, l zerolog.Logger) *Controller {
	if tokenCookie == "" {
		tokenCookie = "token"
	}
	return &Controller{api: api, doc: doc, tokenCookie: tokenCookie, log: l}
}

func (c *Controller) State() State { return c.state }

// Places returns the list from the last successful fetch.
func (c *Controller) Places() []domain.Place { return c.places }

// CheckAuthentication toggles the login link on the token cookie and, when
// a token is present, fetches places.
func (c *Controller) CheckAuthentication(ctx context.Context) {
	link := ui.ByID(c.doc, ui.LoginLinkID)
	if link.Length() == 0 {
		c.log.Debug().Str("id", ui.LoginLinkID).Msg("element missing; skipping auth check")
		return
	}
	token, _ := ui.GetCookie(c.doc.Cookie(), c.tokenCookie)
	if token == "" {
		ui.SetHidden(link, false)
		c.state = Unauthenticated
		return
	}
	ui.SetHidden(link, true)
	c.FetchPlaces(ctx, token)
}

// FetchPlaces loads places once. Failures are logged and end the load.
func (c *Controller) FetchPlaces(ctx context.Context, token string) {
	c.state = Loading
	places, err := c.api.ListPlaces(ctx, token)
	if err != nil {
		c.state = FetchFailed
		var se *domain.StatusError
		if errors.As(err, &se) {
			c.log.Error().Int("status", se.Status).Msg("failed to fetch places")
			return
		}
		c.log.Error().Err(err).Msg("network error fetching places")
		return
	}

	c.places = places
	c.PopulatePriceFilter()
	c.DisplayPlaces()
	c.state = Loaded
}

// PopulatePriceFilter resets the price filter to the fixed options and
// wires its change handler. Calling it again leaves the same four options.
func (c *Controller) PopulatePriceFilter() {
	sel := ui.ByID(c.doc, ui.PriceFilterID)
	if sel.Length() == 0 {
		c.log.Debug().Str("id", ui.PriceFilterID).Msg("element missing; skipping filter setup")
		return
	}
	sel.Empty()
	for _, o := range ui.PriceOptions() {
		sel.AppendNodes(ui.OptionNode(o))
	}
	c.doc.OnChange(ui.PriceFilterID, c.FilterPlaces)
}

// DisplayPlaces replaces the places list with one card per place, in order.
func (c *Controller) DisplayPlaces() {
	list := ui.ByID(c.doc, ui.PlacesListID)
	if list.Length() == 0 {
		c.log.Debug().Str("id", ui.PlacesListID).Msg("element missing; skipping render")
		return
	}
	list.Empty()
	for _, p := range c.places {
		list.AppendNodes(ui.CardNode(p))
	}
}

// FilterPlaces shows the cards priced at or under the selected ceiling and hides the rest.
func (c *Controller) FilterPlaces() {
	sel := ui.ByID(c.doc, ui.PriceFilterID)
	if sel.Length() == 0 {
		return
	}
	ceiling := ui.SelectedValue(sel)
	c.doc.Find("." + ui.PlaceCardClass).Each(func(_ int, card *goquery.Selection) {
		price := parsePrice(card.AttrOr("data-price", ""))
		ui.SetHidden(card, !ui.Visible(price, ceiling))
	})
}

// parsePrice reads a data-price attribute; anything unparsable is NaN and never passes a ceiling.
func parsePrice(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
