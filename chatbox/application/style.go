package application

import (
	"strconv"
	"strings"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
)

const classPrefix = "chatbox"

type cssDecl struct {
	prop      string
	value     string
	important bool
}

type cssRule struct {
	selectors []string
	decls     []cssDecl
}

// shapeStyle holds everything that differs between the round and rectangle buttons.
type shapeStyle struct {
	size          []cssDecl
	bottom        string
	radius        string
	iconSelector  func(icon string) string
	hideSelector  func(icon string) string
	wrapperRadius string
	titleRadius   string
}

var shapeStyles = map[domain.Shape]shapeStyle{
	domain.ShapeRound: {
		size: []cssDecl{
			{prop: "width", value: "50px"},
			{prop: "height", value: "50px"},
		},
		bottom:        "30px",
		radius:        "50px",
		iconSelector:  func(string) string { return ".round." + classPrefix },
		hideSelector:  func(string) string { return cls("rectangle-label") },
		wrapperRadius: "10px 10px 0 0",
		titleRadius:   "10px 10px 0 0",
	},
	domain.ShapeRectangle: {
		size: []cssDecl{
			{prop: "min-width", value: "230px"},
			{prop: "height", value: "40px"},
		},
		bottom:       "0",
		radius:       "5px 5px 0 0",
		iconSelector: func(string) string { return cls("rectangle-label") },
		hideSelector: func(icon string) string {
			parts := append([]string{"dashicons"}, strings.Fields(sanitizeClassList(icon))...)
			return "." + strings.Join(append(parts, "round"), ".")
		},
		wrapperRadius: "0",
		titleRadius:   "0",
	},
}

var animations = map[domain.Animation]string{
	domain.AnimationFadeIn:  classPrefix + "-fade-in 1.5s",
	domain.AnimationSlideUp: classPrefix + "-slide-up 1.5s",
}

const (
	buttonSideOffset  = "15px"
	wrapperSideOffset = "20px"
)

// RenderStyle emits the stylesheet for a visible widget: shared base rules, then
// the shape/position/presence variant, then the conversational bot override.
// Output is a pure function of its inputs.
func RenderStyle(presence domain.PresenceState, s domain.Settings, integrationActive bool) string {
	var rules []cssRule
	rules = append(rules, baseRules(s)...)
	rules = append(rules, variantRules(presence, s)...)
	rules = append(rules, integrationRules(s, integrationActive)...)

	var b strings.Builder
	for _, r := range rules {
		writeRule(&b, r)
	}
	return b.String()
}

func baseRules(s domain.Settings) []cssRule {
	c := s.Colors
	zIndex := strconv.Itoa(s.ZIndex)
	fieldBackground := []cssDecl{{prop: "background-color", value: c.AgentFieldBackground}}
	fieldHover := []cssDecl{{prop: "background-color", value: c.AgentFieldHover}}

	return []cssRule{
		rule(cls("chat-btn"), cssDecl{"z-index", zIndex, true}),
		rule(cls("chat-wrapper"), cssDecl{"z-index", zIndex, true}),
		rule(cls("information-wrapper"), cssDecl{prop: "scrollbar-color", value: "#c1c1c1 " + sanitizeCSSValue(c.Background)}),
		rule(cls("information-wrapper")+"::-webkit-scrollbar", cssDecl{prop: "background", value: c.Background}),
		rule(cls("chat-close"), cssDecl{prop: "color", value: c.Title}),
		rule(cls("chat-subtitle"), cssDecl{prop: "color", value: c.Subtitle}),
		{selectors: []string{cls("chat-direct-information"), cls("chat-direct-information-offline"), cls("chat-modern-information"), cls("chat-modern-information-offline")}, decls: fieldBackground},
		{selectors: []string{cls("chat-direct-information") + ":hover", cls("chat-direct-information-offline") + ":hover", cls("chat-modern-information") + ":hover", cls("chat-modern-information-offline") + ":hover"}, decls: fieldHover},
		rule(cls("agent-profile-wrapper"), cssDecl{prop: "background", value: c.Background}),
		rule(cls("talk-bubble"), cssDecl{prop: "background-color", value: c.Bubble}),
		rule(cls("tri-right")+".left-top:after", cssDecl{prop: "border-color", value: sanitizeCSSValue(c.Bubble) + " transparent transparent transparent"}),
		{selectors: []string{cls("back-button"), cls("back-button") + ":hover"}, decls: buttonColorDecls(c, true)},
		rule("span"+cls("chat-name"), cssDecl{prop: "color", value: c.AgentName}),
		rule("span"+cls("chat-job-title"), cssDecl{prop: "color", value: c.AgentJobTitle}),
		rule("span"+cls("chat-channel"), cssDecl{prop: "color", value: c.AgentChannel}),
		rule(cls("notice"), cssDecl{prop: "color", value: c.Subtitle}),
		rule("#"+classPrefix+"-contact-form-notice", cssDecl{prop: "color", value: c.ContactFormNotice}),
		rule(cls("google-recaptcha-notice"), cssDecl{prop: "color", value: c.RecaptchaNotice}),
		{selectors: []string{cls("google-recaptcha-link"), cls("google-recaptcha-link") + ":hover"}, decls: []cssDecl{{prop: "color", value: c.RecaptchaLink}}},
		{selectors: []string{"#" + classPrefix + "-contact-form-submit-button"}, decls: buttonColorDecls(c, false)},
		{selectors: []string{cls("credit-link"), cls("credit-link") + ":hover"}, decls: []cssDecl{{prop: "color", value: c.Credit}}},
	}
}

func variantRules(presence domain.PresenceState, s domain.Settings) []cssRule {
	shape, ok := shapeStyles[s.Shape]
	if !ok {
		shape = shapeStyles[domain.ShapeRectangle]
	}
	side := string(domain.PositionRight)
	if s.Position == domain.PositionLeft {
		side = string(domain.PositionLeft)
	}
	palette := s.Colors.Palette(presence)

	button := []cssDecl{{prop: "background-color", value: palette.Theme}}
	button = append(button, shape.size...)
	button = append(button,
		cssDecl{prop: side, value: buttonSideOffset},
		cssDecl{prop: "bottom", value: shape.bottom},
		cssDecl{prop: "border-radius", value: shape.radius},
	)

	wrapper := []cssDecl{
		{prop: "background-color", value: s.Colors.Background},
		{prop: side, value: wrapperSideOffset},
		{prop: "border-radius", value: shape.wrapperRadius},
	}
	if anim, ok := animations[s.Animation]; ok {
		wrapper = append(wrapper, cssDecl{prop: "animation", value: anim})
	}

	return []cssRule{
		{selectors: []string{cls("chat-btn")}, decls: button},
		rule(shape.iconSelector(s.Icon), cssDecl{prop: "color", value: palette.Icon}),
		rule(shape.hideSelector(s.Icon), cssDecl{prop: "display", value: "none"}),
		{selectors: []string{cls("chat-wrapper")}, decls: wrapper},
		{selectors: []string{cls("chat-title")}, decls: []cssDecl{
			{prop: "background-color", value: palette.Theme},
			{prop: "color", value: s.Colors.Title},
			{prop: "border-radius", value: shape.titleRadius},
		}},
	}
}

func integrationRules(s domain.Settings, active bool) []cssRule {
	if !active {
		return []cssRule{rule(cls("agent-wrapper"), cssDecl{prop: "display", value: "block"})}
	}
	decls := buttonColorDecls(s.Colors, true)
	return []cssRule{
		rule(cls("agent-wrapper"), cssDecl{prop: "display", value: "none"}),
		{selectors: []string{cls("start-chat-button"), cls("typebot-back-button")}, decls: decls},
		{selectors: []string{cls("start-chat-button") + ":hover", cls("typebot-back-button") + ":hover"}, decls: decls},
	}
}

func buttonColorDecls(c domain.Colors, important bool) []cssDecl {
	return []cssDecl{
		{"background-color", c.Button, important},
		{"background", c.Button, important},
		{"color", c.ButtonText, important},
		{"border-color", c.Button, important},
	}
}

func rule(selector string, decls ...cssDecl) cssRule {
	return cssRule{selectors: []string{selector}, decls: decls}
}

func cls(name string) string {
	return "." + classPrefix + "-" + name
}

func writeRule(b *strings.Builder, r cssRule) {
	b.WriteString(strings.Join(r.selectors, ", "))
	b.WriteString(" {\n")
	for _, d := range r.decls {
		b.WriteString("  ")
		b.WriteString(d.prop)
		b.WriteString(": ")
		b.WriteString(sanitizeCSSValue(d.value))
		if d.important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}

// sanitizeCSSValue keeps only characters that can appear in colors, lengths,
// keywords and simple functions, so a stored value cannot close the declaration.
func sanitizeCSSValue(v string) string {
	v = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune(" #.,%()-_", r):
			return r
		}
		return -1
	}, v)
	return strings.TrimSpace(v)
}

// sanitizeClassList keeps characters valid in a space separated class list.
func sanitizeClassList(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == ' ':
			return r
		}
		return -1
	}, v)
}
