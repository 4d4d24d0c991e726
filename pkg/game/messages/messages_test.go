package messages

import (
	"strings"
	"testing"
)

func TestLoad_English(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatalf("Load(en): %v", err)
	}
	if got := c.Getf(LevelWon, 3); got != "Well done! You solved level 3!" {
		t.Errorf("Getf(LevelWon, 3) = %q", got)
	}
}

func TestCatalog_GetLeavesVerbs(t *testing.T) {
	c := Default()
	if got := c.Get(LevelWon); got != "Well done! You solved level %d!" {
		t.Errorf("Get(LevelWon) = %q, want the unformatted text", got)
	}
	if got := c.Getf(BlockAdded, "MOVE", 2, 5); got != "Added MOVE (2/5 blocks)" {
		t.Errorf("Getf(BlockAdded) = %q", got)
	}
	if got := c.Getf(RobotBlocked); strings.Contains(got, "%!") {
		t.Errorf("Getf without vars = %q", got)
	}
}

func TestLoad_FrenchWithRegion(t *testing.T) {
	c, err := Load("fr_FR.UTF-8")
	if err != nil {
		t.Fatalf("Load(fr_FR.UTF-8): %v", err)
	}
	if c.Locale() != "fr" {
		t.Errorf("Locale() = %q, want fr", c.Locale())
	}
	if got := c.Get(RobotBlocked); !strings.HasPrefix(got, "Oups !") {
		t.Errorf("Get(RobotBlocked) = %q, want French text", got)
	}
}

func TestLoad_EmptyIsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if c.Locale() != DefaultLocale {
		t.Errorf("Locale() = %q, want %q", c.Locale(), DefaultLocale)
	}
}

func TestLoad_Unsupported(t *testing.T) {
	if _, err := Load("xx"); err == nil {
		t.Error("Load(xx) = nil error, want error")
	}
}

func TestCatalog_EveryKeyTranslated(t *testing.T) {
	keys := []string{
		RobotBlocked, JumpImpossible, ProgramEmpty, NoLevel,
		LevelLoaded, LevelWon, LightsRemaining, RunCancelled, AllLevelsDone,
		LevelGoals, LevelReset,
		BlockAdded, BlockRefused, BlockNotAllowed, BlockRemoved, ProgramCleared,
		ProgramLoaded, UnknownCommand, ConsoleHelp, Goodbye,
	}
	for _, locale := range Locales() {
		t.Run(locale, func(t *testing.T) {
			c, err := Load(locale)
			if err != nil {
				t.Fatalf("Load(%s): %v", locale, err)
			}
			for _, k := range keys {
				if got := c.Get(k); got == k {
					t.Errorf("%s: key %s is not translated", locale, k)
				}
			}
		})
	}
}

func TestCatalog_NilFallsBackToKey(t *testing.T) {
	var c *Catalog
	if got := c.Get(RunCancelled); got != RunCancelled {
		t.Errorf("nil Get() = %q, want key", got)
	}
}

func TestLocales(t *testing.T) {
	got := strings.Join(Locales(), ",")
	if got != "en,fr" {
		t.Errorf("Locales() = %q, want en,fr", got)
	}
}
