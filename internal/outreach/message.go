// Package outreach generates personalized cold messages for enriched
// prospects.
package outreach

import (
	"fmt"
	"strings"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// Generator builds cold-outreach messages in a fixed language.
type Generator struct {
	language   string // "cs", "en" or "ru"; anything else falls back to Czech
	senderName string
	demoOffer  bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSender signs messages with the given name.
func WithSender(name string) Option {
	return func(g *Generator) {
		g.senderName = name
	}
}

// WithDemoOffer toggles the free-demo paragraph.
func WithDemoOffer(enabled bool) Option {
	return func(g *Generator) {
		g.demoOffer = enabled
	}
}

// NewGenerator creates a message generator for the given language code.
func NewGenerator(language string, opts ...Option) *Generator {
	g := &Generator{
		language:  language,
		demoOffer: true,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// ColdMessage builds a personalized message for the prospect, addressed to
// its primary owner when one was extracted.
func (g *Generator) ColdMessage(p *model.Prospect) string {
	switch g.language {
	case "en":
		return g.english(p)
	case "ru":
		return g.russian(p)
	default:
		return g.czech(p)
	}
}

// surname returns the last word of the primary owner's name, or "".
func surname(p *model.Prospect) string {
	owner := p.PrimaryOwner()
	if owner == nil {
		return ""
	}
	words := strings.Fields(owner.Name)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}

func (g *Generator) czech(p *model.Prospect) string {
	var b strings.Builder

	if name := surname(p); name != "" {
		fmt.Fprintf(&b, "Dobrý den, pane %s,\n\n", name)
	} else {
		b.WriteString("Dobrý den,\n\n")
	}

	fmt.Fprintf(&b, "kontaktuji vás ohledně automatizace pro %s.\n\n", p.Name)
	b.WriteString("Nabízím řešení pro:\n")
	b.WriteString("• automatizaci zákaznické komunikace (Telegram, WhatsApp, SMS)\n")
	b.WriteString("• integraci s Google Maps a rezervačními systémy\n")
	b.WriteString("• CRM pro správu klientů a leadů\n\n")

	if g.demoOffer {
		b.WriteString("Rád bych vám nabídl bezplatnou demo verzi nebo mini-audit vašeho současného procesu práce s klienty.\n\n")
	}

	b.WriteString("Můžeme si domluvit krátký hovor nebo osobní setkání v Praze.\n\n")
	g.signature(&b, "S pozdravem")
	return b.String()
}

func (g *Generator) english(p *model.Prospect) string {
	var b strings.Builder

	if name := surname(p); name != "" {
		fmt.Fprintf(&b, "Hello Mr./Ms. %s,\n\n", name)
	} else {
		b.WriteString("Hello,\n\n")
	}

	fmt.Fprintf(&b, "I am reaching out about automation for %s.\n\n", p.Name)
	b.WriteString("I offer solutions for:\n")
	b.WriteString("• automating customer chats (Telegram, WhatsApp, SMS)\n")
	b.WriteString("• Google Maps and booking system integration\n")
	b.WriteString("• CRM for managing clients and leads\n\n")

	if g.demoOffer {
		b.WriteString("I would be happy to offer you a free demo or a mini-audit of your current client workflow.\n\n")
	}

	b.WriteString("We could arrange a short call or meet in person in Prague.\n\n")
	g.signature(&b, "Best regards")
	return b.String()
}

func (g *Generator) russian(p *model.Prospect) string {
	var b strings.Builder

	if name := surname(p); name != "" {
		fmt.Fprintf(&b, "Здравствуйте, %s,\n\n", name)
	} else {
		b.WriteString("Здравствуйте,\n\n")
	}

	fmt.Fprintf(&b, "пишу вам по поводу автоматизации для %s.\n\n", p.Name)
	b.WriteString("Предлагаю решения для:\n")
	b.WriteString("• автоматизации общения с клиентами (Telegram, WhatsApp, SMS)\n")
	b.WriteString("• интеграции с Google Maps и системами бронирования\n")
	b.WriteString("• CRM для управления клиентами и лидами\n\n")

	if g.demoOffer {
		b.WriteString("Буду рад предложить бесплатную демо-версию или мини-аудит вашей текущей работы с клиентами.\n\n")
	}

	b.WriteString("Можем договориться о коротком звонке или личной встрече в Праге.\n\n")
	g.signature(&b, "С уважением")
	return b.String()
}

func (g *Generator) signature(b *strings.Builder, closing string) {
	if g.senderName != "" {
		fmt.Fprintf(b, "%s,\n%s\n", closing, g.senderName)
	} else {
		fmt.Fprintf(b, "%s\n", closing)
	}
}
