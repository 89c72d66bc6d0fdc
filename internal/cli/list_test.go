// ABOUTME: Unit tests for the list and preview commands
// ABOUTME: Tests alias listing, filtering, JSON output and rendering
package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harper/fontsel/internal/fontconf"
)

func TestListCommand(t *testing.T) {
	t.Run("lists every category", func(t *testing.T) {
		root := setupEnv(t)
		writeAlias(t, root, "sans", "ipa", "IPAexGothic\n")

		stdout, _, err := run(t, "list", "--aliases", root)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		for _, want := range []string{"sans\tipa\t\tIPAexGothic", "sans\tnoto\t\tNoto Sans CJK JP", "serif\tipa\t\tIPAexMincho", "monospace\ttakao\t\tTakaoGothic"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
			}
		}
		if strings.Index(stdout, "sans\tipa") > strings.Index(stdout, "sans\tnoto") {
			t.Errorf("expected aliases sorted, got:\n%s", stdout)
		}
	})

	t.Run("single category with pattern as JSON", func(t *testing.T) {
		root := setupEnv(t)
		writeAlias(t, root, "sans", "ipa", "IPAexGothic\n")
		writeAlias(t, root, "sans", "noto-jp", "Noto Sans JP\n")

		stdout, _, err := run(t, "list", "sans", "--match", "noto*", "--json", "--aliases", root)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		var listed []listedAlias
		if err := json.Unmarshal([]byte(stdout), &listed); err != nil {
			t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
		}
		if len(listed) != 2 {
			t.Fatalf("got %d aliases, want 2: %+v", len(listed), listed)
		}
		if listed[0].Alias != "noto" || listed[1].Alias != "noto-jp" || listed[1].Family != "Noto Sans JP" {
			t.Errorf("unexpected aliases: %+v", listed)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		root := setupEnv(t)

		_, _, err := run(t, "list", "gothic", "--aliases", root)
		if err == nil || !strings.Contains(err.Error(), "unknown category") {
			t.Fatalf("expected unknown category error, got: %v", err)
		}
	})
}

func TestPreviewCommand(t *testing.T) {
	t.Run("prints the rule file", func(t *testing.T) {
		root := setupEnv(t)

		stdout, _, err := run(t, "preview", "--aliases", root, "noto", "ipa", "takao")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if stdout != fontconf.GenerateXML("Noto Sans CJK JP", "IPAexMincho", "TakaoGothic") {
			t.Errorf("unexpected preview:\n%s", stdout)
		}
	})

	t.Run("reports lookup failures", func(t *testing.T) {
		root := setupEnv(t)

		_, _, err := run(t, "preview", "--aliases", root, "noto", "ipa", "missing")
		if err == nil || !strings.Contains(err.Error(), "failed reading monospace font") {
			t.Fatalf("expected monospace lookup error, got: %v", err)
		}
	})
}
