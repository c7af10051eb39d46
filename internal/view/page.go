// Package view renders the landing page with gomponents.
package view

import (
	"github.com/cargohost/backend/internal/catalog"
	"github.com/cargohost/backend/internal/landing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const brand = "CargoHost"

// refreshSeconds is how soon a page rendered mid-load asks to be reloaded.
const refreshSeconds = "2"

// Index renders the whole landing page for st.
func Index(st landing.State) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("ru"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.If(st.Catalog.State == catalog.StateLoading,
					h.Meta(g.Attr("http-equiv", "refresh"), h.Content(refreshSeconds)),
				),
				h.TitleEl(g.Text(brand+" | хостинг Minecraft серверов")),
				h.StyleEl(g.Raw(stylesheet)),
			),
			h.Body(
				navBar(st),
				h.Main(
					hero(),
					pricing(st.Catalog, st.Selection),
					faq(),
					about(),
				),
				siteFooter(),
				g.If(st.Dialog.Open, loginDialog(st.Dialog)),
			),
		),
	)
}

func navBar(st landing.State) g.Node {
	return h.Nav(h.Class("nav"),
		h.A(h.Class("logo"), h.Href("/"),
			h.Span(h.Class("logo-mark"), g.Text("C")),
			h.Span(g.Text(brand)),
		),
		h.Div(h.Class("nav-links"),
			g.Map(sections, func(s link) g.Node {
				return h.A(h.Href(s.href), g.Text(s.label))
			}),
		),
		accountControl(st),
	)
}

func accountControl(st landing.State) g.Node {
	if st.Session != nil && st.Session.LoggedIn() {
		return h.Div(h.Class("account"), g.Attr("data-account", "logged-in"),
			h.Span(h.Class("account-email"), g.Text(st.Session.User().Email)),
			h.Form(h.Method("post"), h.Action("/logout"),
				h.Button(h.Type("submit"), h.Class("btn btn-outline"), g.Text("Выйти")),
			),
		)
	}
	return h.A(h.Class("btn"), h.Href("/?login=1"), g.Attr("data-account", "logged-out"), g.Text("Войти"))
}

type link struct {
	href  string
	label string
}

var sections = []link{
	{"#home", "Главная"},
	{"#pricing", "Тарифы"},
	{"#support", "Поддержка"},
	{"#about", "О нас"},
}
