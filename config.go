package vterm

import (
	"image/color"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the subset of terminal behavior that host applications
// typically expose as user preferences, rather than wiring through
// individual Option values by hand. Load it from a YAML file and build a
// Terminal from it with NewTerminal, or pass its Options to New.
type Config struct {
	// ScrollBackHistory is the number of lines retained in scrollback.
	// Ignored when UnlimitedScrollBack is true.
	ScrollBackHistory int `yaml:"scroll_back_history"`
	// UnlimitedScrollBack disables the scrollback line cap entirely.
	UnlimitedScrollBack bool `yaml:"unlimited_scroll_back"`

	// ScrollWithHistory keeps the viewport anchored to the same history
	// offset across new writes instead of snapping to the bottom.
	ScrollWithHistory bool `yaml:"scroll_with_history"`
	// ScrollOnTTYOutput snaps the viewport to the bottom whenever the child
	// process writes.
	ScrollOnTTYOutput bool `yaml:"scroll_on_tty_output"`
	// ScrollOnTTYKeyPress snaps the viewport to the bottom on key input.
	ScrollOnTTYKeyPress bool `yaml:"scroll_on_tty_key_press"`
	// ScrollOnPaste snaps the viewport to the bottom when pasting.
	ScrollOnPaste bool `yaml:"scroll_on_paste"`
	// ScrollOnResize snaps the viewport to the bottom on terminal resize.
	ScrollOnResize bool `yaml:"scroll_on_resize"`

	// TraditionalWrapping disables reverse-wrap: when true, Backspace at
	// column 0 of a wrapped line stays put instead of moving to the
	// previous row's last column. Off by default, matching modern xterm.
	TraditionalWrapping bool `yaml:"traditional_wrapping"`

	// CutChars is the character class (regex body, e.g. `\w` or a custom
	// set) used to decide word boundaries for double-click / word-expand
	// selection.
	CutChars string `yaml:"cut_chars"`

	// InitialRows and InitialCols size a new Terminal before the first
	// resize event arrives from the host.
	InitialRows int `yaml:"initial_rows"`
	InitialCols int `yaml:"initial_cols"`

	// CustomSelectFgColor / CustomSelectBgColor override the STOCK
	// SELECT_FG/SELECT_BG colors used to paint a selection. Nil keeps the
	// default (invert the cell's own colors).
	CustomSelectFgColor *color.RGBA `yaml:"custom_select_fg_color"`
	CustomSelectBgColor *color.RGBA `yaml:"custom_select_bg_color"`

	// CustomCursorFillColor / CustomCursorTextColor override the STOCK
	// CURSOR_FILL/CURSOR_TEXT colors used to paint the cursor block.
	CustomCursorFillColor *color.RGBA `yaml:"custom_cursor_fill_color"`
	CustomCursorTextColor *color.RGBA `yaml:"custom_cursor_text_color"`
}

// DefaultConfig returns the conventional xterm-like defaults.
func DefaultConfig() Config {
	return Config{
		ScrollBackHistory:   10000,
		ScrollOnTTYOutput:   true,
		ScrollOnTTYKeyPress: true,
		ScrollOnPaste:       true,
		CutChars:            `\w/.,:;@#%&()+=*'"~!$<>`,
		InitialRows:         DEFAULT_ROWS,
		InitialCols:         DEFAULT_COLS,
	}
}

// LoadConfig reads a YAML document into a Config seeded with DefaultConfig,
// so a partial document only overrides the fields it sets.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}

// Options translates the config's constructor-time fields into the Option
// values New expects, including WithCutChars for a non-empty CutChars.
// Fields with no direct Option equivalent (scroll-on-* triggers, scrollback
// size) are host-side policy; callers read them back off the Config they
// loaded and apply them after construction (e.g. SetMaxScrollback via
// NewTerminal).
func (c Config) Options() []Option {
	opts := []Option{WithSize(c.InitialRows, c.InitialCols), WithTraditionalWrapping(c.TraditionalWrapping)}
	if c.CutChars != "" {
		opts = append(opts, WithCutChars(c.CutChars))
	}
	if c.CustomSelectFgColor != nil || c.CustomSelectBgColor != nil {
		opts = append(opts, WithSelectColors(c.CustomSelectFgColor, c.CustomSelectBgColor))
	}
	if c.CustomCursorFillColor != nil || c.CustomCursorTextColor != nil {
		opts = append(opts, WithCursorColors(c.CustomCursorFillColor, c.CustomCursorTextColor))
	}
	return opts
}

// NewTerminal builds a Terminal from cfg, applying opts afterward so callers
// can still override providers. It sets the scrollback cap from
// ScrollBackHistory unless UnlimitedScrollBack is set.
func NewTerminal(cfg Config, opts ...Option) *Terminal {
	t := New(append(cfg.Options(), opts...)...)
	if !cfg.UnlimitedScrollBack {
		t.SetMaxScrollback(cfg.ScrollBackHistory)
	}
	return t
}
