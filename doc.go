// Package vterm provides a headless VT220-compatible terminal emulator.
//
// This package emulates a terminal without any display, making it ideal for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Creating terminal-based web applications
//   - Automated testing of CLI tools
//   - Screen scraping and automation
//
// # Quick Start
//
// Create a terminal and write ANSI sequences to it:
//
//	term := vterm.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: The main emulator that processes ANSI sequences
//   - [Buffer]: A 2D grid of cells with scrollback support
//   - [Cell]: A single character with colors and attributes
//   - [Cursor]: Tracks position and rendering style
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so you can write
// raw bytes containing ANSI escape sequences:
//
//	term := vterm.New(
//	    vterm.WithSize(24, 80),           // 24 rows, 80 columns
//	    vterm.WithScrollback(storage),    // Enable scrollback
//	    vterm.WithResponse(ptyWriter),    // Handle terminal responses
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
// # Dual Buffers
//
// Terminal maintains two buffers:
//
//   - Primary buffer: Normal mode with optional scrollback storage
//   - Alternate buffer: Used by full-screen apps (vim, less, htop), no scrollback
//
// Applications switch buffers via ANSI sequences (CSI ?1049h/l). Check which
// buffer is active:
//
//	if term.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(vterm.CellFlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg)
//	    fmt.Printf("BG: %v\n", cell.Bg)
//	}
//
// Cell flags include: Bold, Dim, Italic, Underline, Blink, Reverse, Hidden, Strike.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface. The package supports:
//
//   - Named colors (indices 0-15 for standard ANSI colors)
//   - 256-color palette (indices 0-255)
//   - True color (24-bit RGB via [color.RGBA])
//
// [Terminal.Snapshot] resolves every cell color, named, indexed or RGB, to a
// hex string:
//
//	snap := term.Snapshot(vterm.SnapshotDetailFull)
//	fg := snap.Lines[0].Cells[0].Fg
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer can be stored for later access.
// Implement [ScrollbackProvider] or use the built-in in-memory storage that
// New installs by default:
//
//	// In-memory scrollback with 10000 line limit
//	term := vterm.New()
//	term.SetMaxScrollback(10000)
//
//	// Access scrollback
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell
//	}
//
// # Response Writer
//
// A [ResponseProvider] set with [WithResponse] receives terminal responses for
// the PTY (cursor position reports, etc.):
//
//	term := vterm.New(vterm.WithResponse(os.Stdout))
//
// # Providers
//
// Providers handle terminal events and queries. All are optional with no-op defaults:
//
//   - [BellProvider]: Handles bell/beep events
//   - [TitleProvider]: Handles window title changes (OSC 0/1/2)
//   - [ClipboardProvider]: Handles clipboard operations (OSC 52)
//   - [ScrollbackProvider]: Stores lines scrolled off screen
//   - [RecordingProvider]: Captures raw input for replay
//
// Example with providers:
//
//	term := vterm.New(
//	    vterm.WithResponse(os.Stdout),
//	    vterm.WithBell(&MyBellHandler{}),
//	    vterm.WithTitle(&MyTitleHandler{}),
//	)
//
// # Middleware
//
// Middleware intercepts ANSI handler calls for custom behavior:
//
//	mw := &vterm.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        log.Printf("Input: %c", r)
//	        next(r) // Call default handler
//	    },
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // Don't call next() to suppress the bell
//	    },
//	}
//	term := vterm.New(vterm.WithMiddleware(mw))
//
// # Terminal Modes
//
// Various terminal behaviors are controlled by mode flags:
//
//	term.HasMode(vterm.ModeLineWrap)       // Auto line wrap enabled?
//	term.HasMode(vterm.ModeShowCursor)     // Cursor visible?
//	term.HasMode(vterm.ModeBracketedPaste) // Bracketed paste enabled?
//
// See [TerminalMode] for all available modes.
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
// # Selection
//
// Manage text selections for copy/paste:
//
//	term.SetSelection(
//	    vterm.Position{Row: 0, Col: 0},
//	    vterm.Position{Row: 2, Col: 10},
//	)
//	text := term.GetSelectedText()
//	term.ClearSelection()
//
// # Search
//
// Find text in the visible screen or scrollback:
//
//	matches := term.Search("error")
//	for _, pos := range matches {
//	    fmt.Printf("Found at row %d, col %d\n", pos.Row, pos.Col)
//	}
//
//	// Search scrollback (returns negative row numbers)
//	scrollbackMatches := term.SearchScrollback("error")
//
// # Snapshots
//
// Capture the terminal state for serialization or rendering:
//
//	// Text only (smallest)
//	snap := term.Snapshot(vterm.SnapshotDetailText)
//
//	// With style segments (good for HTML rendering)
//	snap := term.Snapshot(vterm.SnapshotDetailStyled)
//
//	// Full cell data (complete state)
//	snap := term.Snapshot(vterm.SnapshotDetailFull)
//
//	// Convert to JSON
//	data, _ := json.Marshal(snap)
//
// Snapshot attributes are booleans: Underline is set for any underline
// style (single, double, curly, dotted, dashed) and Blink for either blink
// speed. Snapshots do not report which underline style or blink speed a
// cell uses, and do not include the underline color.
//
// # Auto-Resize Mode
//
// In auto-resize mode, the buffer grows instead of scrolling:
//
//	term := vterm.New(vterm.WithAutoResize())
//
//	// Capture complete output without truncation
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Buffer has grown to fit all output
//	fmt.Printf("Total rows: %d\n", term.Rows())
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use. The terminal uses internal
// locking to protect state. However, if you need to perform multiple operations
// atomically, you should use your own synchronization.
//
// # Supported ANSI Sequences
//
// The terminal supports a comprehensive set of ANSI escape sequences including:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support
//   - Terminal modes (DECSET, DECRST)
//   - Device status reports (DSR)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Mouse reporting
//   - Window title (OSC 0/1/2)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//
// For the complete list of supported sequences, see the [go-ansicode] package
// documentation.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
//
// # Scrollback Deduplication
//
// The default scrollback storage is paragraph-granular and content-addressed:
// consecutive wrapped rows belonging to one logical line are joined and
// handed once to a [Deduper] rather than stored per on-screen row, so two
// rows that render identically (a redrawn progress bar, a repeated prompt)
// share one backing allocation. Swap in a custom content store by
// implementing [Deduper] and passing it via [WithDeduper]; the built-in
// [MemoryDeduper] refcounts by exact cell content.
//
//	term := vterm.New(vterm.WithDeduper(vterm.NewMemoryDeduper()))
//
// Tearing down a terminal with a large scrollback can mean releasing many
// paragraphs; that work happens off the hot path via an [AsyncDestroyer]
// background worker so Close doesn't block on it.
//
// # Absolute Positions and Cross-History Selection
//
// [APos] addresses a cell regardless of whether it's on the active grid
// (Row >= 0) or in scrollback (Row < 0), so a selection or search can span
// both without special-casing the boundary:
//
//	term.SetHistorySelection(vterm.APos{Row: -5, Col: 0}, vterm.APos{Row: 2, Col: 10})
//	text := term.GetHistorySelectedText()
//
// [ExpandSelectionWord] and [ExpandSelectionLine] implement double-click
// (word) and triple-click (paragraph) selection expansion over the same
// absolute coordinate space.
//
// # Reflow on Resize
//
// [Terminal.Resize] clips content to the new grid (rows/cols added are
// blank, rows/cols removed are truncated). [Terminal.ResizeReflow] instead
// re-wraps the full logical text stream — scrollback and active grid
// together — at the new column width, the way xterm-class terminals behave
// on a window resize, and places the cursor on the same logical character
// it was on before the resize.
//
// # Key and Mouse Encoding
//
// [Terminal.SendKey] and [Terminal.SendMouse] translate a key chord or
// pointer event into the byte sequence a child process expects, honoring
// APPCURSOR and SGR-mouse modes; APPKEYPAD does not change key output.
// [KeyBindings] lets a host intercept
// a chord (e.g. Ctrl+Shift+C for copy) before it falls through to the
// xterm byte encoding:
//
//	bindings := vterm.NewKeyBindings()
//	bindings.Bind(vterm.KeyHome, vterm.ModCtrl, "scroll-to-top")
//	term := vterm.New(vterm.WithKeyBindings(bindings))
//
// # Config
//
// [Config] collects the options a host typically exposes as user
// preferences (scrollback size, wrap quirks, cut-chars, selection/cursor
// colors) so they can be loaded from YAML instead of wired by hand:
//
//	cfg, _ := vterm.LoadConfig(configFile)
//	term := vterm.NewTerminal(cfg)
//
// # Diagnostic Logging
//
// [LoggerProvider] receives warnings for malformed input the core
// otherwise silently ignores (unrecognized modes, out-of-range SGR codes).
// It defaults to a no-op; [WithLogger] with [NewZapLogger] wires it to
// structured logging.
package vterm
