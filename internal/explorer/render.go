package explorer

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/vimterm/internal/ui"
)

const (
	title     = "File Explorer"
	sizeWidth = 8
	dateWidth = 14
	colGap    = 2
)

var markerWidth = ansi.StringWidth(ui.SelectionMarker)

// entry is one row of the listing as drawn.
type entry struct {
	name, size, date string
	isDir            bool
}

// entries returns the rows in navigator order. Callers hold e.mu.
func (e *Explorer) entries() []entry {
	rows := make([]entry, 0, len(e.items)+1)
	if e.hasParent() {
		rows = append(rows, entry{name: "📁 ..", size: "--", date: "--", isDir: true})
	}
	for _, it := range e.items {
		rows = append(rows, entry{
			name:  it.DisplayName(),
			size:  it.FormattedSize(),
			date:  it.FormattedDate(),
			isDir: it.IsDir,
		})
	}
	return rows
}

// render builds a frame for a width x height terminal. Callers hold e.mu.
func (e *Explorer) render(width, height int) string {
	width = ui.ClampWidth(width)

	var b strings.Builder
	header := ui.NewHeader(title, e.dir, width)
	b.WriteString(header.Render())
	b.WriteString("\n")

	footer := e.footer(width)
	footerLines := strings.Count(footer, "\n") + 1

	switch {
	case e.status.Loading():
		b.WriteString(ui.LoadingStyle.Render(e.status.Message()))
		b.WriteString("\n")
	case e.lastErr != nil && len(e.items) == 0:
		b.WriteString(ui.ErrorMessageStyle.Render(e.lastErr.Error()))
		b.WriteString("\n")
	default:
		// Header box, column titles, divider, blank line before the footer.
		visible := height - header.Lines() - 2 - 1 - footerLines
		e.renderListing(&b, width, max(visible, 1))
	}

	if e.lastErr != nil && len(e.items) > 0 {
		b.WriteString(ui.ErrorMessageStyle.Render(e.lastErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// renderListing draws the column titles and up to visible rows, scrolled so
// the selected row stays on screen.
func (e *Explorer) renderListing(b *strings.Builder, width, visible int) {
	columns := e.opts.Columns
	colWidth := (width - colGap*(columns-1)) / columns
	showDate := columns == 1
	nameWidth := colWidth - markerWidth - sizeWidth
	if showDate {
		nameWidth -= dateWidth
	}

	titleRow := ui.Fit("  Name", nameWidth+markerWidth) + ui.Fit("Size", sizeWidth)
	if showDate {
		titleRow += ui.Fit("Modified", dateWidth)
	}
	titles := []string{titleRow}
	if columns == 2 {
		titles = append(titles, titleRow)
	}
	b.WriteString(ui.ColumnTitleStyle.Render(strings.Join(titles, strings.Repeat(" ", colGap))))
	b.WriteString("\n")
	b.WriteString(ui.RenderHorizontalDivider(width, "─"))
	b.WriteString("\n")

	rows := e.entries()
	mid := e.nav.Midpoint()
	if len(rows) == 0 || mid == 0 {
		b.WriteString(ui.MetaStyle.Render("  (empty)"))
		b.WriteString("\n")
		return
	}

	selected := e.nav.SelectedIndex()
	selRow, _ := e.nav.Position(selected)
	top := 0
	if selRow >= visible {
		top = selRow - visible + 1
	}

	for row := top; row < mid && row < top+visible; row++ {
		var cells []string
		for col := 0; col < columns; col++ {
			i := col*mid + row
			if i >= len(rows) {
				break
			}
			cells = append(cells, renderCell(rows[i], i == selected, nameWidth, showDate))
		}
		b.WriteString(strings.Join(cells, strings.Repeat(" ", colGap)))
		b.WriteString("\n")
	}
}

func renderCell(r entry, selected bool, nameWidth int, showDate bool) string {
	marker := strings.Repeat(" ", markerWidth)
	if selected {
		marker = ui.SelectionMarker
	}

	name := ui.Fit(r.name, nameWidth)
	meta := ui.Fit(r.size, sizeWidth)
	if showDate {
		meta += ui.Fit(r.date, dateWidth)
	}

	switch {
	case selected:
		return ui.SelectedStyle.Render(marker+name) + ui.MetaStyle.Render(meta)
	case r.isDir:
		return marker + ui.DirectoryStyle.Render(name) + ui.MetaStyle.Render(meta)
	default:
		return marker + ui.FileStyle.Render(name) + ui.MetaStyle.Render(meta)
	}
}

// footer is the key help line generated from the key map.
func (e *Explorer) footer(width int) string {
	h := help.New()
	h.Width = width
	h.ShowAll = e.opts.Columns == 2
	return h.View(e.keys)
}
