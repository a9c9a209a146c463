// Package vtcore provides a headless VT100/VT220-compatible terminal
// emulation engine.
//
// The package emulates a terminal without any display, making it ideal for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Automated testing of CLI tools
//   - Screen scraping and automation
//
// # Quick Start
//
// Create a terminal and write ANSI sequences to it:
//
//	term := vtcore.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: The main emulator that processes escape sequences
//   - [Buffer]: A 2D grid of cells with scrollback support
//   - [Cell]: A single character with colors and attributes
//   - [Cursor]: Tracks position and rendering style
//
// The byte-stream parsing lives in the ansi subpackage: [Terminal]
// implements its Handler interface and owns all resulting state.
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so you can
// write raw bytes containing escape sequences:
//
//	term := vtcore.New(
//	    vtcore.WithSize(24, 80),        // 24 rows, 80 columns
//	    vtcore.WithScrollback(10000),   // Enable scrollback
//	    vtcore.WithResponse(ptyWriter), // Handle terminal responses
//	)
//
//	// Process output from a command
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Read the result
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// Writes may be fragmented arbitrarily: an escape sequence split across
// Write calls produces the same screen as the unfragmented stream.
//
// # Dual Buffers
//
// Terminal maintains two screens:
//
//   - Primary: normal mode with optional scrollback storage
//   - Alternate: used by full-screen apps (vim, less, htop), no scrollback
//
// Applications switch screens via CSI ?47 (plain swap) or CSI ?1049 (save
// cursor, swap, clear). Check which one is active with
// [Terminal.IsAlternateScreen].
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := term.Cell(row, col)
//	fmt.Printf("Char: %c\n", cell.Char)
//	fmt.Printf("Bold: %v\n", cell.HasFlag(vtcore.CellFlagBold))
//
// Cell flags include Bold, Dim, Italic, the underline variants, Blink,
// Reverse, Hidden, Strike, and Protected (DECSCA). Protected cells survive
// selective erase (DECSEL/DECSED) but not plain erase.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface: named defaults,
// 256-color palette indices, and 24-bit RGB. OSC 4 palette overrides are
// tracked per terminal and returned by [Terminal.PaletteColor].
//
// # Scrollback and Viewport
//
// Lines scrolled off the top of the primary screen go to a
// [ScrollbackProvider]. The viewport can be scrolled back into that history:
//
//	term.SetViewportOffset(10) // Scroll 10 lines into history
//	line := term.ViewportLine(0)
//
// # Providers
//
// Providers handle terminal events and queries. All are optional with no-op
// defaults: [BellProvider], [TitleProvider], [ClipboardProvider],
// [ScrollbackProvider], [RecordingProvider], [SizeProvider],
// [ResizeProvider], [StateChangeProvider], [DeviceControlProvider], and the
// control-string providers ([APCProvider], [PMProvider], [SOSProvider]).
//
// # Middleware
//
// Middleware intercepts handler operations for custom behavior:
//
//	mw := &vtcore.Middleware{
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // Don't call next() to suppress the bell
//	    },
//	}
//	term := vtcore.New(vtcore.WithMiddleware(mw))
//
// # Dirty Tracking
//
// Track which cells changed for efficient rendering:
//
//	if term.HasDirty() {
//	    for _, pos := range term.DirtyCells() {
//	        // Redraw cell at pos.Row, pos.Col
//	    }
//	    term.ClearDirty()
//	}
//
// # Snapshots and Screenshots
//
// [Terminal.Snapshot] captures the screen for serialization at three levels
// of detail; [Snapshot.Fingerprint] hashes a capture for change detection.
// [Terminal.Screenshot] renders the screen to an [image.RGBA].
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use.
package vtcore
