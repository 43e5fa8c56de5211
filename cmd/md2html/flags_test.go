package main

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Flag parsing for the convert command
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		flags, positional, err := parseConvertFlags([]string{"input.md"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}

		if len(positional) != 1 || positional[0] != "input.md" {
			t.Errorf("positional = %v, want [input.md]", positional)
		}
		if flags.output != "" || flags.workers != 0 || flags.title != "" {
			t.Errorf("unexpected non-default flags: %+v", flags)
		}
		if flags.fragment || flags.hardWraps || flags.style.disabled {
			t.Errorf("boolean flags should default to false: %+v", flags)
		}
	})

	t.Run("long flags", func(t *testing.T) {
		t.Parallel()

		flags, positional, err := parseConvertFlags([]string{
			"--output", "out.html",
			"--workers", "4",
			"--title", "My Title",
			"--fragment",
			"--hard-wraps",
			"--style", "github",
			"--asset-path", "/assets",
			"--config", "site",
			"--quiet",
			"input.md",
		})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}

		if flags.output != "out.html" {
			t.Errorf("output = %q, want %q", flags.output, "out.html")
		}
		if flags.workers != 4 {
			t.Errorf("workers = %d, want 4", flags.workers)
		}
		if flags.title != "My Title" {
			t.Errorf("title = %q, want %q", flags.title, "My Title")
		}
		if !flags.fragment || !flags.hardWraps {
			t.Errorf("fragment/hardWraps not set: %+v", flags)
		}
		if flags.style.name != "github" {
			t.Errorf("style = %q, want %q", flags.style.name, "github")
		}
		if flags.style.assetPath != "/assets" {
			t.Errorf("assetPath = %q, want %q", flags.style.assetPath, "/assets")
		}
		if flags.common.config != "site" {
			t.Errorf("config = %q, want %q", flags.common.config, "site")
		}
		if !flags.common.quiet {
			t.Error("quiet not set")
		}
		if len(positional) != 1 || positional[0] != "input.md" {
			t.Errorf("positional = %v, want [input.md]", positional)
		}
	})

	t.Run("shorthand flags", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseConvertFlags([]string{"-o", "x.html", "-w", "2", "-q", "-v", "-c", "cfg", "in.md"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}

		if flags.output != "x.html" {
			t.Errorf("output = %q, want %q", flags.output, "x.html")
		}
		if flags.workers != 2 {
			t.Errorf("workers = %d, want 2", flags.workers)
		}
		if !flags.common.quiet || !flags.common.verbose {
			t.Errorf("quiet/verbose not set: %+v", flags.common)
		}
		if flags.common.config != "cfg" {
			t.Errorf("config = %q, want %q", flags.common.config, "cfg")
		}
	})

	t.Run("no-style flag", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseConvertFlags([]string{"--no-style", "in.md"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if !flags.style.disabled {
			t.Error("style.disabled not set")
		}
	})

	t.Run("two positional arguments", func(t *testing.T) {
		t.Parallel()

		_, positional, err := parseConvertFlags([]string{"in.md", "out.html"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if len(positional) != 2 || positional[1] != "out.html" {
			t.Errorf("positional = %v, want [in.md out.html]", positional)
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseConvertFlags([]string{"--bogus"}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})

	t.Run("invalid workers value fails", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseConvertFlags([]string{"-w", "lots"}); err == nil {
			t.Error("expected error for non-numeric worker count")
		}
	})
}
