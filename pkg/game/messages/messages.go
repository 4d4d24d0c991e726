// Package messages holds the player-facing text of the game, translated with
// gettext PO catalogs.
package messages

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Message keys
const (
	RobotBlocked    = "ROBOT_BLOCKED"
	JumpImpossible  = "JUMP_IMPOSSIBLE"
	ProgramEmpty    = "PROGRAM_EMPTY"
	NoLevel         = "NO_LEVEL"
	LevelLoaded     = "LEVEL_LOADED"
	LevelWon        = "LEVEL_WON"
	LightsRemaining = "LIGHTS_REMAINING"
	RunCancelled    = "RUN_CANCELLED"
	AllLevelsDone   = "ALL_LEVELS_DONE"
	LevelGoals      = "LEVEL_GOALS"
	LevelReset      = "LEVEL_RESET"

	// Console
	BlockAdded      = "BLOCK_ADDED"
	BlockRefused    = "BLOCK_REFUSED"
	BlockNotAllowed = "BLOCK_NOT_ALLOWED"
	BlockRemoved    = "BLOCK_REMOVED"
	ProgramCleared  = "PROGRAM_CLEARED"
	ProgramLoaded   = "PROGRAM_LOADED"
	UnknownCommand  = "UNKNOWN_COMMAND"
	ConsoleHelp     = "CONSOLE_HELP"
	Goodbye         = "GOODBYE"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

//go:embed locales/*.po
var catalogs embed.FS

// Catalog translates message keys for one locale
type Catalog struct {
	locale string
	po     *gotext.Po
}

// Load returns the catalog for a locale. Region and encoding suffixes are
// ignored, so "fr_FR.UTF-8" loads the French catalog.
func Load(locale string) (*Catalog, error) {
	lang := normalize(locale)
	if lang == "" {
		lang = DefaultLocale
	}

	raw, err := catalogs.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	po := gotext.NewPo()
	po.Parse(raw)

	return &Catalog{locale: lang, po: po}, nil
}

// Default returns the English catalog
func Default() *Catalog {
	c, err := Load(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the language code of the catalog
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Get returns the translation of key, verbs left unformatted. Unknown keys
// are returned as is.
func (c *Catalog) Get(key string) string {
	if c == nil || c.po == nil {
		return key
	}
	translate := c.po.Get
	return translate(key)
}

// Getf translates key and formats the translation with vars
func (c *Catalog) Getf(key string, vars ...any) string {
	return fmt.Sprintf(c.Get(key), vars...)
}

// Locales lists the embedded languages
func Locales() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "_-."); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
