// Package presentation renders command results as JSON or styled text.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Format selects how results are written.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or text)", s)
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format Format
	styles styles
}

// NewFormatter creates a formatter writing to writer. Colors are only
// emitted when writer is a terminal.
func NewFormatter(writer io.Writer, format Format) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(writer)),
	}
}

// Print writes v. Text output is available for every DTO in this package;
// anything else falls back to JSON.
func (f *Formatter) Print(v any) error {
	if f.format == FormatText {
		if text, ok := f.text(v); ok {
			_, err := io.WriteString(f.writer, text+"\n")
			return err
		}
	}
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (f *Formatter) text(v any) (string, bool) {
	st := f.styles
	switch v := v.(type) {
	case AgentDTO:
		return st.agent(v), true
	case ContractDTO:
		return st.contract(v), true
	case []ContractDTO:
		return joinBlocks(v, st.contract), true
	case PageDTO[ContractDTO]:
		return st.page(joinBlocks(v.Items, st.contract), v.Page, v.Limit, v.Total, v.NextPage), true
	case ShipDTO:
		return st.ship(v), true
	case []ShipDTO:
		return joinBlocks(v, st.ship), true
	case NavDTO:
		return st.nav(v), true
	case ExtractionDTO:
		return st.extraction(v), true
	case PurchaseDTO:
		return st.purchase(v), true
	case WaypointDTO:
		return st.waypoint(v), true
	case PageDTO[WaypointDTO]:
		return st.page(joinBlocks(v.Items, st.waypoint), v.Page, v.Limit, v.Total, v.NextPage), true
	case ShipyardDTO:
		return st.shipyard(v), true
	case LedgerDTO:
		return st.ledger(v), true
	default:
		return "", false
	}
}

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	muted    lipgloss.Style
	status   map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	positive := r.NewStyle().Foreground(lipgloss.Color("#73F59F"))
	warning := r.NewStyle().Foreground(lipgloss.Color("#FECA57"))
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#54A0FF")),
		label:    r.NewStyle().Width(14).Foreground(lipgloss.Color("#8C8C8C")),
		positive: positive,
		negative: r.NewStyle().Foreground(lipgloss.Color("#FF8787")),
		muted:    r.NewStyle().Faint(true),
		status: map[string]lipgloss.Style{
			"DOCKED":     positive,
			"IN_ORBIT":   r.NewStyle().Foreground(lipgloss.Color("#54A0FF")),
			"IN_TRANSIT": warning,
		},
	}
}

func (s styles) row(label, value string) string {
	return s.label.Render(label) + value
}

func (s styles) block(title string, rows ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{s.title.Render(title)}, rows...)...)
}

func (s styles) credits(n int64) string {
	text := strconv.FormatInt(n, 10)
	switch {
	case n > 0:
		return s.positive.Render(text)
	case n < 0:
		return s.negative.Render(text)
	default:
		return text
	}
}

func (s styles) delta(n int64) string {
	if n > 0 {
		return s.positive.Render("+" + strconv.FormatInt(n, 10))
	}
	return s.credits(n)
}

func (s styles) navStatus(status string) string {
	if st, ok := s.status[status]; ok {
		return st.Render(status)
	}
	return status
}

func (s styles) yesNo(b bool) string {
	if b {
		return s.positive.Render("yes")
	}
	return s.muted.Render("no")
}

func (s styles) agent(a AgentDTO) string {
	return s.block(a.Symbol,
		s.row("Headquarters", a.Headquarters),
		s.row("Faction", a.Faction),
		s.row("Credits", s.credits(a.Credits)),
		s.row("Ships", strconv.Itoa(a.Ships)),
		s.row("Contracts", strconv.Itoa(a.Contracts)),
	)
}

func (s styles) contract(c ContractDTO) string {
	rows := []string{
		s.row("Type", c.Type+" for "+c.Faction),
		s.row("Accepted", s.yesNo(c.Accepted)),
		s.row("Fulfilled", s.yesNo(c.Fulfilled)),
		s.row("Payment", fmt.Sprintf("%d on accept, %d on fulfil", c.OnAccepted, c.OnFulfilled)),
		s.row("Deadline", c.Deadline.UTC().Format("2006-01-02 15:04")),
	}
	for _, d := range c.Deliver {
		rows = append(rows, s.row("Deliver", fmt.Sprintf("%d/%d %s to %s", d.Fulfilled, d.Required, d.Trade, d.Destination)))
	}
	return s.block(c.ID, rows...)
}

func (s styles) ship(sh ShipDTO) string {
	return s.block(sh.Symbol,
		s.row("Role", sh.Role),
		s.row("Status", s.navStatus(sh.Status)+" at "+sh.Waypoint),
		s.row("Flight mode", sh.FlightMode),
		s.row("Fuel", fmt.Sprintf("%d/%d", sh.Fuel, sh.FuelCapacity)),
		s.row("Cargo", fmt.Sprintf("%d/%d %s", sh.CargoUnits, sh.CargoCapacity, s.items(sh.Cargo))),
	)
}

func (s styles) items(items []ItemDTO) string {
	if len(items) == 0 {
		return s.muted.Render("(empty)")
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Symbol, it.Units))
	}
	return strings.Join(parts, ", ")
}

func (s styles) nav(n NavDTO) string {
	return s.row(n.Ship, s.navStatus(n.Status)+" at "+n.Waypoint)
}

func (s styles) extraction(e ExtractionDTO) string {
	return s.block(e.Ship,
		s.row("Extracted", fmt.Sprintf("%d %s", e.Units, e.Yield)),
		s.row("Cooldown", fmt.Sprintf("%ds", e.CooldownSeconds)),
		s.row("Cargo", fmt.Sprintf("%d/%d %s", e.CargoUnits, e.CargoCapacity, s.items(e.Cargo))),
	)
}

func (s styles) purchase(p PurchaseDTO) string {
	return s.block(p.Ship,
		s.row("Role", p.Role),
		s.row("Bought at", p.Waypoint),
		s.row("Price", s.credits(p.Price)),
		s.row("Credits left", s.credits(p.Credits)),
	)
}

func (s styles) waypoint(w WaypointDTO) string {
	traits := s.muted.Render("(none)")
	if len(w.Traits) > 0 {
		traits = strings.Join(w.Traits, ", ")
	}
	return s.block(w.Symbol,
		s.row("Type", w.Type),
		s.row("System", w.System),
		s.row("Position", fmt.Sprintf("(%d, %d)", w.X, w.Y)),
		s.row("Traits", traits),
	)
}

func (s styles) shipyard(y ShipyardDTO) string {
	rows := make([]string, 0, len(y.ShipTypes))
	for _, t := range y.ShipTypes {
		price := s.muted.Render("price unknown")
		if p, ok := y.Prices[t]; ok {
			price = strconv.FormatInt(p, 10)
		}
		rows = append(rows, s.row(t, price))
	}
	if len(rows) == 0 {
		rows = append(rows, s.muted.Render("sells nothing"))
	}
	return s.block(y.Symbol, rows...)
}

func (s styles) ledger(l LedgerDTO) string {
	rows := make([]string, 0, len(l.Entries)+1)
	for _, e := range l.Entries {
		rows = append(rows, fmt.Sprintf("%s  %-18s %-28s %s -> %d",
			s.muted.Render(e.CreatedAt.UTC().Format("2006-01-02 15:04:05")), e.Kind, e.Reference, s.delta(e.Delta), e.Balance))
	}
	if len(rows) == 0 {
		rows = append(rows, s.muted.Render("no entries"))
	}
	rows = append(rows, s.row("Net", s.delta(l.Net)))
	return s.block(l.Agent, rows...)
}

func (s styles) page(body string, page, limit, total int64, next *int64) string {
	footer := fmt.Sprintf("page %d, %d per page, %d total", page, limit, total)
	if next != nil {
		footer += fmt.Sprintf(" (next: --page %d)", *next)
	}
	if body == "" {
		body = s.muted.Render("nothing on this page")
	}
	return body + "\n" + s.muted.Render(footer)
}

func joinBlocks[T any](items []T, render func(T) string) string {
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, render(it))
	}
	return strings.Join(blocks, "\n\n")
}
