package main

import (
	"strings"
	"testing"

	"subvocab/internal/pipeline"
)

func TestRenderTableIncludesHeadersAndRows(t *testing.T) {
	out := renderTable(
		[]string{"Word", "Difficulty"},
		[][]string{{"adventure", "2"}, {"forest", "3"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	for _, want := range []string{"Word", "Difficulty", "adventure", "forest"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintStatusUpdateFailureIncludesMessage(t *testing.T) {
	var buf strings.Builder
	printStatusUpdate(&buf, pipeline.Update{Status: pipeline.StatusFailed, Message: "no captions"}, false)
	if !strings.Contains(buf.String(), "Failed: no captions") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestPrintStatusUpdateProgress(t *testing.T) {
	var buf strings.Builder
	printStatusUpdate(&buf, pipeline.Update{Status: pipeline.StatusFetchingCaptions}, false)
	if !strings.Contains(buf.String(), "Fetching captions...") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"generate", "words", "stats", "config"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
