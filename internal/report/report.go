// Package report renders built models and construction errors for a terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"qpce/internal/domain"
	"qpce/internal/loader"
	"qpce/internal/schema"

	"github.com/charmbracelet/lipgloss"
)

// Renderer styles output for one writer. Colors are dropped automatically
// when the writer is not a terminal.
type Renderer struct {
	title   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	box     lipgloss.Style
	errorS  lipgloss.Style
	success lipgloss.Style
	hint    lipgloss.Style
}

// NewRenderer creates a renderer whose color profile matches w
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")),
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		box: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1),
		errorS: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),
		success: r.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true),
		hint: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
	}
}

// Summary renders a human-readable overview of a view
func (r *Renderer) Summary(view *domain.View) string {
	var b strings.Builder

	stats := []string{
		r.stat("network", view.NetworkID),
		r.stat("routers", fmt.Sprint(len(view.Routers))),
		r.stat("links", fmt.Sprint(len(view.Links))),
	}
	if view.DemandID != "" {
		stats = append(stats,
			r.stat("demand", view.DemandID),
			r.stat("paths", fmt.Sprint(len(view.Paths))))
	}
	stats = append(stats, r.stat("fingerprint", shortFingerprint(view.Fingerprint)))

	b.WriteString(r.success.Render("model built"))
	b.WriteString("\n")
	b.WriteString(r.box.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	if len(view.Routers) > 0 {
		b.WriteString("\n" + r.header.Render("Routers") + "\n")
		for _, rv := range view.Routers {
			ports := make([]string, 0, len(rv.Ports))
			for _, p := range rv.Ports {
				ports = append(ports, fmt.Sprintf("%d:%s", p.Port, p.Neighbor))
			}
			fmt.Fprintf(&b, "  %s %s\n", rv.Name, r.label.Render("["+strings.Join(ports, " ")+"]"))
		}
	}

	if len(view.Links) > 0 {
		b.WriteString("\n" + r.header.Render("Links") + "\n")
		for _, l := range view.Links {
			fmt.Fprintf(&b, "  %s/%d <-> %s/%d %s\n",
				l.Router1, l.Port1, l.Router2, l.Port2, r.label.Render(l.Label))
		}
	}

	if len(view.Paths) > 0 {
		b.WriteString("\n" + r.header.Render("Paths") + "\n")
		for _, p := range view.Paths {
			fmt.Fprintf(&b, "  %s: %s -> %s %s\n", p.Name, p.EndPoint1, p.EndPoint2,
				r.label.Render(fmt.Sprintf("bandwidth=%d fidelity=%g", p.Bandwidth, p.Fidelity)))
		}
	}

	return b.String()
}

// Error renders a construction error, listing every schema diagnostic.
func (r *Renderer) Error(err error) string {
	var b strings.Builder
	b.WriteString(r.errorS.Render("error:"))
	b.WriteString(" ")

	var sve *schema.SchemaValidationError
	if errors.As(err, &sve) {
		fmt.Fprintf(&b, "%s document does not match its schema\n", sve.Document)
		for _, d := range sve.Diagnostics {
			fmt.Fprintf(&b, "  - %s %s\n", d.String(), r.label.Render("("+d.Kind+")"))
		}
		return b.String()
	}

	b.WriteString(err.Error())
	b.WriteString("\n")
	if h := hint(err); h != "" {
		b.WriteString("  " + r.hint.Render(h) + "\n")
	}
	return b.String()
}

func (r *Renderer) stat(name, value string) string {
	return fmt.Sprintf("%s %s", r.label.Render(fmt.Sprintf("%-12s", name)), value)
}

func hint(err error) string {
	switch {
	case errors.Is(err, loader.ErrFileAccess):
		return "check that the file exists and is readable"
	case errors.Is(err, loader.ErrParse):
		return "the document is not well-formed YAML"
	case errors.Is(err, domain.ErrUnknownRouter):
		return "every link and path end point must name a router of the topology document"
	case errors.Is(err, domain.ErrDuplicateName):
		return "router names must be unique per network and path names unique per demand"
	default:
		return ""
	}
}

func shortFingerprint(fp string) string {
	if len(fp) > 16 {
		return fp[:16]
	}
	return fp
}
