package view

import (
	"net/url"
	"strings"

	"github.com/cargohost/backend/internal/catalog"
	"github.com/cargohost/backend/internal/domain"
	"github.com/cargohost/backend/internal/landing"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Placeholder copy for the non-loaded catalog states.
const (
	LoadingText = "Загрузка тарифов..."
	EmptyText   = "Тарифы временно недоступны"
	PopularText = "Популярный"
)

func pricing(snap catalog.Snapshot, sel landing.Selection) g.Node {
	return h.Section(h.ID("pricing"), h.Class("section alt"),
		h.Div(h.Class("container"),
			h.Div(h.Class("section-head"),
				h.H2(g.Text("Выберите свой "), h.Span(h.Class("accent"), g.Text("тариф"))),
				h.P(g.Text("Все тарифы включают защиту от DDoS и круглосуточную поддержку")),
			),
			planGrid(snap, sel),
		),
	)
}

func planGrid(snap catalog.Snapshot, sel landing.Selection) g.Node {
	switch snap.State {
	case catalog.StateLoading:
		return h.P(h.Class("placeholder"), g.Attr("data-catalog", "loading"), g.Text(LoadingText))
	case catalog.StateEmpty:
		return h.P(h.Class("placeholder"), g.Attr("data-catalog", "empty"), g.Text(EmptyText))
	}
	return h.Div(h.Class("plan-grid"), g.Attr("data-catalog", "loaded"),
		g.Map(snap.Plans, func(p domain.Plan) g.Node {
			return planCard(p, sel.IsSelected(p.Slug))
		}),
	)
}

func planCard(p domain.Plan, selected bool) g.Node {
	return h.A(
		c.Classes{"plan-card": true, "popular": p.IsPopular, "selected": selected},
		h.Href(selectHref(p.Slug)),
		g.Attr("data-plan", p.Slug),
		g.If(p.IsPopular, g.Attr("data-popular", "true")),
		g.If(selected, g.Attr("data-selected", "true")),

		g.If(p.IsPopular, h.Span(h.Class("badge"), g.Text(PopularText))),
		h.H3(g.Text(p.Name)),
		h.Div(h.Class("price"),
			h.Span(h.Class("amount"), g.Text(displayPrice(p.Price))),
			h.Span(h.Class("period"), g.Text("/мес")),
		),
		h.P(h.Class("players"), g.Textf("До %d игроков", p.MaxPlayers)),
		h.Ul(
			h.Li(g.Textf("%d GB RAM", p.RAMGB)),
			h.Li(g.Textf("%d vCPU", p.CPUCores)),
			h.Li(g.Textf("%d GB SSD", p.StorageGB)),
			g.If(p.HasDDoSProtection, h.Li(h.Class("ddos"), h.Strong(g.Text("DDoS защита")))),
			h.Li(g.Text("Поддержка "+p.SupportLevel)),
			g.Map(p.Features, func(f string) g.Node {
				return h.Li(g.Text(f))
			}),
		),
		h.Span(
			c.Classes{"btn": true, "btn-outline": !p.IsPopular},
			g.Text("Выбрать тариф"),
		),
	)
}

// displayPrice drops a zero fraction ("299.00" -> "299"). Prices carry no
// currency; the endpoint owns that.
func displayPrice(price string) string {
	return strings.TrimSuffix(price, ".00")
}

func selectHref(slug string) string {
	return "/?" + url.Values{"plan": {slug}}.Encode() + "#pricing"
}
