package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const noWill = "no will registered for %s"

var (
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(15)
	valueStyle    = lipgloss.NewStyle()
	executedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#5FD787"})
	pendingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"})
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

// willView is the JSON shape of a will
type willView struct {
	Owner         string   `json:"owner"`
	ContentHash   string   `json:"content_hash"`
	Beneficiaries []string `json:"beneficiaries"`
	Executed      bool     `json:"executed"`
}

// RenderWill writes owner's will to w in the given format. A nil record
// means no will is registered.
func RenderWill(w io.Writer, owner types.Identity, rec *types.WillRecord, format Format) error {
	switch Resolve(format, w) {
	case FormatJSON:
		return renderJSON(w, owner, rec)
	case FormatMarkdown:
		return renderMarkdown(w, owner, rec)
	case FormatTerminal:
		return renderTerminal(w, owner, rec)
	default:
		return renderText(w, owner, rec)
	}
}

func status(rec *types.WillRecord) string {
	if rec.Executed {
		return "executed"
	}
	return "pending"
}

func renderJSON(w io.Writer, owner types.Identity, rec *types.WillRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if rec == nil {
		return enc.Encode(nil)
	}
	return enc.Encode(willView{
		Owner:         owner.String(),
		ContentHash:   rec.ContentHash,
		Beneficiaries: types.Strings(rec.Beneficiaries),
		Executed:      rec.Executed,
	})
}

func renderText(w io.Writer, owner types.Identity, rec *types.WillRecord) error {
	if rec == nil {
		_, err := fmt.Fprintf(w, noWill+"\n", owner)
		return err
	}
	beneficiaries := "(none)"
	if len(rec.Beneficiaries) > 0 {
		beneficiaries = strings.Join(types.Strings(rec.Beneficiaries), ", ")
	}
	_, err := fmt.Fprintf(w, "Owner:         %s\nContent hash:  %s\nBeneficiaries: %s\nStatus:        %s\n",
		owner, rec.ContentHash, beneficiaries, status(rec))
	return err
}

func renderTerminal(w io.Writer, owner types.Identity, rec *types.WillRecord) error {
	if rec == nil {
		_, err := fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(noWill, owner)))
		return err
	}

	statusText := pendingStyle.Render(status(rec))
	if rec.Executed {
		statusText = executedStyle.Render(status(rec))
	}

	lines := []string{
		labelStyle.Render("Owner") + valueStyle.Render(owner.String()),
		labelStyle.Render("Content hash") + valueStyle.Render(rec.ContentHash),
		labelStyle.Render("Status") + statusText,
		labelStyle.Render("Beneficiaries"),
	}
	if len(rec.Beneficiaries) == 0 {
		lines = append(lines, "  "+mutedStyle.Render("(none)"))
	}
	for i, b := range rec.Beneficiaries {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, valueStyle.Render(b.String())))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// WillMarkdown returns the markdown document describing a will
func WillMarkdown(owner types.Identity, rec *types.WillRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Will of `%s`\n\n", owner)
	if rec == nil {
		b.WriteString("_No will registered._\n")
		return b.String()
	}
	fmt.Fprintf(&b, "- **Content hash:** `%s`\n", rec.ContentHash)
	fmt.Fprintf(&b, "- **Status:** %s\n\n", status(rec))
	b.WriteString("## Beneficiaries\n\n")
	if len(rec.Beneficiaries) == 0 {
		b.WriteString("_None._\n")
	}
	for i, ben := range rec.Beneficiaries {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, ben)
	}
	return b.String()
}

func renderMarkdown(w io.Writer, owner types.Identity, rec *types.WillRecord) error {
	md := WillMarkdown(owner, rec)

	var options []glamour.TermRendererOption
	if IsTerminal(w) {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		// Fall back to the raw markdown
		_, werr := io.WriteString(w, md)
		return werr
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		_, werr := io.WriteString(w, md)
		return werr
	}
	_, err = io.WriteString(w, rendered)
	return err
}
