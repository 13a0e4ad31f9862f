package ui_test

import (
	"reflect"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"hbnb_web/internal/domain"
	"hbnb_web/internal/ui"
)

func TestPriceOptions_FixedOrder(t *testing.T) {
	got := ui.PriceOptions()
	want := []ui.Option{
		{Value: "10", Label: "$10"},
		{Value: "50", Label: "$50"},
		{Value: "100", Label: "$100"},
		{Value: "All", Label: "All"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PriceOptions = %+v", got)
	}
}

func TestVisibleSet(t *testing.T) {
	places := []domain.Place{{PricePerNight: 10}, {PricePerNight: 50}, {PricePerNight: 100}}

	cases := []struct {
		selected string
		want     []bool
	}{
		{"All", []bool{true, true, true}},
		{"50", []bool{true, true, false}},
		{"10", []bool{true, false, false}},
		{"100", []bool{true, true, true}},
		{"cheap", []bool{false, false, false}},
	}
	for _, tc := range cases {
		got := ui.VisibleSet(places, tc.selected)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("VisibleSet(%q) = %v; want %v", tc.selected, got, tc.want)
		}
	}
}

func TestCardNode(t *testing.T) {
	card := ui.CardNode(domain.Place{
		Name: "Cabin", Description: "Quiet", City: "Bergen", Country: "Norway", PricePerNight: 75.5,
	})
	sel := goquery.NewDocumentFromNode(card).Selection
	if !sel.HasClass(ui.PlaceCardClass) || sel.AttrOr("data-price", "") != "75.5" {
		t.Fatalf("unexpected card: %v", sel.Nodes)
	}
	var texts []string
	sel.Children().Each(func(_ int, c *goquery.Selection) {
		texts = append(texts, c.Text())
	})
	want := []string{"Cabin", "Quiet", "Location: Bergen, Norway", "Price: $75.5"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("card texts = %q", texts)
	}
}

func TestTree_SelectOnlyKnownOptions(t *testing.T) {
	page := ui.NewPage("")
	sel := page.Find("#" + ui.PriceFilterID)
	for _, o := range ui.PriceOptions() {
		sel.AppendNodes(ui.OptionNode(o))
	}
	fired := 0
	page.OnChange(ui.PriceFilterID, func() { fired++ })

	if page.Select(ui.PriceFilterID, "75") {
		t.Fatalf("Select accepted a value with no option")
	}
	if !page.Select(ui.PriceFilterID, "50") || ui.SelectedValue(sel) != "50" {
		t.Fatalf("Select(50) did not take")
	}
	if fired != 1 {
		t.Fatalf("change handler fired %d times", fired)
	}

	v := page.View()
	if v.Selected != "50" || !v.Options[1].Selected || v.Options[0].Selected {
		t.Fatalf("unexpected view options: %+v", v.Options)
	}
}

func TestTree_MissingElements(t *testing.T) {
	page := ui.NewTree("token=x")
	if page.Find("#"+ui.LoginLinkID).Length() != 0 {
		t.Fatalf("expected no login link")
	}
	if page.Select(ui.PriceFilterID, "All") {
		t.Fatalf("Select on a missing element should report false")
	}
	v := page.View()
	if v.LoginVisible || v.Options != nil || v.Cards != nil {
		t.Fatalf("expected zero view, got %+v", v)
	}
}
