package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/strager/rgg/analyzer"
	"github.com/strager/rgg/token"
)

var (
	colorConstruct = lipgloss.Color("#06B6D4") // Cyan
	colorTerminal  = lipgloss.Color("#94A3B8") // Gray
	colorDecl      = lipgloss.Color("#10B981") // Emerald
	colorError     = lipgloss.Color("#EF4444") // Red
)

type styles struct {
	color     bool
	construct lipgloss.Style
	terminal  lipgloss.Style
	decl      lipgloss.Style
	err       lipgloss.Style
}

func newStyles(color bool) styles {
	return styles{
		color:     color,
		construct: lipgloss.NewStyle().Foreground(colorConstruct),
		terminal:  lipgloss.NewStyle().Foreground(colorTerminal),
		decl:      lipgloss.NewStyle().Foreground(colorDecl).Bold(true),
		err:       lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// Printer is a Sink that writes one line per event:
//
//	rggBEGIN <construct>
//	rggEND <construct>
//	rggTOKEN <token>
//	rggDECL <identifier>: <type>
//	rggERROR <message>
//
// The first write error is kept and later events are dropped.
type Printer struct {
	w          io.Writer
	styles     styles
	hideTokens bool
	err        error
}

func NewPrinter(w io.Writer, cfg *Config) *Printer {
	return &Printer{
		w:          w,
		styles:     newStyles(!cfg.NoColor),
		hideTokens: cfg.HideTokens,
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) line(tag, text string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s %s\n", tag, text)
}

func (p *Printer) EnterConstruct(name string) {
	p.line("rggBEGIN", p.styles.render(p.styles.construct, name))
}

func (p *Printer) LeaveConstruct(name string) {
	p.line("rggEND", p.styles.render(p.styles.construct, name))
}

func (p *Printer) ConsumeTerminal(tok token.Token) {
	if p.hideTokens {
		return
	}
	p.line("rggTOKEN", p.styles.render(p.styles.terminal, tok.String()))
}

func (p *Printer) DeclareVariable(v analyzer.Variable) {
	p.line("rggDECL", p.styles.render(p.styles.decl, v.String()))
}

func (p *Printer) ReportError(tok token.Token, message string) {
	p.line("rggERROR", p.styles.render(p.styles.err, message))
}
