package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type feature struct {
	title string
	text  string
}

var highlights = []feature{
	{"DDoS защита", "Многоуровневая защита от атак для бесперебойной работы"},
	{"Быстрый запуск", "Сервер готов к работе за 5 минут после оплаты"},
	{"Поддержка 24/7", "Наша команда всегда готова помочь вам"},
}

func hero() g.Node {
	return h.Section(h.ID("home"), h.Class("section hero"),
		h.Div(h.Class("container"),
			h.H1(g.Text("Хостинг для"), h.Br(), h.Span(h.Class("accent"), g.Text("Minecraft серверов"))),
			h.P(h.Class("lead"), g.Text("Стабильная работа с защитой от DDoS-атак. Запустите свой сервер за 5 минут")),
			h.Div(h.Class("actions"),
				h.A(h.Class("btn btn-lg"), h.Href("#pricing"), g.Text("Начать сейчас")),
				h.A(h.Class("btn btn-lg btn-outline"), h.Href("#about"), g.Text("Узнать больше")),
			),
			h.Div(h.Class("grid-3"),
				g.Map(highlights, func(f feature) g.Node {
					return h.Div(h.Class("card"), h.H3(g.Text(f.title)), h.P(g.Text(f.text)))
				}),
			),
		),
	)
}

type question struct {
	q string
	a string
}

var questions = []question{
	{
		"Как быстро активируется сервер?",
		"Ваш сервер будет готов к работе в течение 5 минут после оплаты. Вы сразу получите доступ к панели управления.",
	},
	{
		"Что входит в защиту от DDoS?",
		"Мы используем многоуровневую защиту от DDoS-атак, включая фильтрацию трафика и автоматическое обнаружение угроз. Ваш сервер останется доступным даже при атаках.",
	},
	{
		"Можно ли сменить тариф?",
		"Да, вы можете в любой момент повысить или понизить тариф. При повышении разница будет пересчитана пропорционально.",
	},
	{
		"Какие версии Minecraft поддерживаются?",
		"Мы поддерживаем все версии Minecraft от 1.8 до последней актуальной версии, включая Paper, Spigot, Forge и другие сборки.",
	},
}

func faq() g.Node {
	return h.Section(h.ID("support"), h.Class("section"),
		h.Div(h.Class("container narrow"),
			h.Div(h.Class("section-head"),
				h.H2(g.Text("Часто задаваемые "), h.Span(h.Class("accent"), g.Text("вопросы"))),
				h.P(g.Text("Ответы на популярные вопросы о нашем хостинге")),
			),
			h.Div(h.Class("faq"),
				g.Map(questions, func(q question) g.Node {
					// name groups the details elements so only one stays open
					return h.Details(g.Attr("name", "faq"),
						h.Summary(g.Text(q.q)),
						h.P(g.Text(q.a)),
					)
				}),
			),
			h.Div(h.Class("card contact"),
				h.H3(g.Text("Не нашли ответ?")),
				h.P(g.Text("Наша служба поддержки работает круглосуточно и готова помочь вам")),
				h.Div(h.Class("actions"),
					h.A(h.Class("btn btn-outline"), h.Href("mailto:"+supportEmail), g.Text("Email")),
					h.A(h.Class("btn btn-outline"), h.Href("#"), g.Text("Discord")),
					h.A(h.Class("btn btn-outline"), h.Href("#"), g.Text("Telegram")),
				),
			),
		),
	)
}

var stats = []feature{
	{"99.9%", "Аптайм серверов"},
	{"5000+", "Активных серверов"},
	{"24/7", "Техподдержка"},
}

func about() g.Node {
	return h.Section(h.ID("about"), h.Class("section alt"),
		h.Div(h.Class("container narrow"),
			h.H2(g.Text("О "), h.Span(h.Class("accent"), g.Text(brand))),
			h.P(h.Class("lead"), g.Text("Мы команда энтузиастов Minecraft, которая создала надежный хостинг для игровых серверов. "+
				"Наша миссия — предоставить стабильную и безопасную платформу для вашего сообщества.")),
			h.Div(h.Class("grid-3"),
				g.Map(stats, func(s feature) g.Node {
					return h.Div(h.Class("stat"), h.Div(h.Class("stat-value"), g.Text(s.title)), h.Div(g.Text(s.text)))
				}),
			),
		),
	)
}

const (
	supportEmail = "support@cargohost.ru"
	supportPhone = "+7 (800) 555-35-35"
)

func siteFooter() g.Node {
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("container grid-4"),
			h.Div(
				h.Div(h.Class("logo"), h.Span(h.Class("logo-mark"), g.Text("C")), h.Span(g.Text(brand))),
				h.P(g.Text("Надежный хостинг для ваших Minecraft серверов")),
			),
			h.Div(
				h.H3(g.Text("Навигация")),
				g.Map(sections, func(s link) g.Node {
					return h.A(h.Class("block"), h.Href(s.href), g.Text(s.label))
				}),
			),
			h.Div(
				h.H3(g.Text("Контакты")),
				h.Div(g.Text(supportEmail)),
				h.Div(g.Text(supportPhone)),
			),
			h.Div(
				h.H3(g.Text("Мы в соцсетях")),
				h.A(h.Href("#"), g.Text("Telegram")),
				g.Text(" "),
				h.A(h.Href("#"), g.Text("Discord")),
			),
		),
		h.P(h.Class("copyright"), g.Text("© 2024 "+brand+". Все права защищены.")),
	)
}
