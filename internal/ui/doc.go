// Package ui holds the lipgloss palette, styles and layout helpers shared by
// the vimterm screens.
//
// Screens here are plain strings written straight to the terminal, not Bubble
// Tea models: the explorer owns its raw mode loop and redraws the whole frame
// on every change.
//
//	header := ui.NewHeader("File Explorer", "/home/user", width)
//	fmt.Fprint(w, header.Render())
//
// Fit and ClampWidth measure in terminal cells, so wide glyphs such as emoji
// count as two.
package ui
