package view

import (
	"github.com/cargohost/backend/internal/landing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// loginDialog is the login/registration dialog. Both forms post to the page
// handler, which calls the auth service and stores the session on success.
func loginDialog(d landing.Dialog) g.Node {
	title, action, submit := "Вход", "/login", "Войти"
	if d.Register {
		title, action, submit = "Регистрация", "/register", "Зарегистрироваться"
	}

	return g.El("dialog", g.Attr("open"), h.Class("dialog"), g.Attr("data-dialog", action),
		h.A(h.Class("dialog-close"), h.Href("/"), g.Text("×")),
		h.H2(g.Text(title)),
		g.If(d.Error != "", h.P(h.Class("error"), g.Attr("role", "alert"), g.Text(d.Error))),
		h.Form(h.Method("post"), h.Action(action),
			g.If(d.Register, field("full_name", "text", "Имя", false)),
			field("email", "email", "Email", true),
			field("password", "password", "Пароль", true),
			h.Button(h.Type("submit"), h.Class("btn btn-block"), g.Text(submit)),
		),
		g.If(!d.Register, h.A(h.Href("/?login=1&register=1"), g.Text("Нет аккаунта? Зарегистрируйтесь"))),
		g.If(d.Register, h.A(h.Href("/?login=1"), g.Text("Уже есть аккаунт? Войдите"))),
	)
}

func field(name, typ, label string, required bool) g.Node {
	return g.El("label", h.Class("field"),
		h.Span(g.Text(label)),
		h.Input(h.Type(typ), h.Name(name), g.If(required, h.Required())),
	)
}
