package diary

import (
	"strings"
	"testing"

	"pet-behavior-diary/internal/domain/timewindow"
)

func TestComposeDiaryPrompt_EmbedsContextVerbatim(t *testing.T) {
	rctx := AssembleContext(sampleRecords(), kst)
	date := timewindow.Date{Year: 2024, Month: 6, Day: 1}

	prompt := ComposeDiaryPrompt("Milo (dog, mixed)", rctx, date)

	for _, line := range rctx.Lines {
		if !strings.Contains(prompt, line) {
			t.Fatalf("expected context line %q embedded verbatim", line)
		}
	}
	if !strings.Contains(prompt, "2024-06-01") {
		t.Fatalf("expected diary date in prompt")
	}
	if !strings.Contains(prompt, "Milo (dog, mixed)") {
		t.Fatalf("expected profile text in prompt")
	}
}

func TestComposeDiaryPrompt_FirstPersonAndAffectionateClosing(t *testing.T) {
	// Aunque el día tenga un score bajo (0.30), la instrucción de cierre
	// afectuoso tiene que estar igual.
	rctx := AssembleContext(sampleRecords(), kst)
	prompt := ComposeDiaryPrompt("", rctx, timewindow.Date{Year: 2024, Month: 6, Day: 1})

	if !strings.Contains(prompt, "first person") {
		t.Fatalf("expected first-person instruction")
	}
	if !strings.Contains(prompt, "do not enumerate the data") {
		t.Fatalf("expected no-data-dump instruction")
	}
	if !strings.Contains(prompt, "affectionate closing line") {
		t.Fatalf("expected mandatory affectionate closing instruction")
	}
	if !strings.Contains(prompt, "No matter how difficult the day") {
		t.Fatalf("closing must be unconditional on the day's scores")
	}
}

func TestComposeDiaryPrompt_IncludesScoreLegend(t *testing.T) {
	rctx := AssembleContext(sampleRecords(), kst)
	prompt := ComposeDiaryPrompt("", rctx, timewindow.Date{Year: 2024, Month: 6, Day: 1})

	for _, fragment := range []string{"0.70", "0.40", "0.30", "positive_score", "active_score"} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("expected legend fragment %q in prompt", fragment)
		}
	}
}

func TestComposeQueryPrompt_GroundedVariant(t *testing.T) {
	rctx := AssembleContext(sampleRecords(), kst)

	prompt := ComposeQueryPrompt("Milo", rctx, "why is he tired?", "this week")

	if !strings.Contains(prompt, "this week") {
		t.Fatalf("expected window label in prompt")
	}
	if !strings.Contains(prompt, "actionable") {
		t.Fatalf("grounded variant must ask for actionable guidance")
	}
	if !strings.Contains(prompt, rctx.Lines[0]) {
		t.Fatalf("grounded variant must embed observations")
	}
	if !strings.Contains(prompt, "why is he tired?") {
		t.Fatalf("expected the owner's question")
	}
}

func TestComposeQueryPrompt_UngroundedVariant(t *testing.T) {
	prompt := ComposeQueryPrompt("Milo", RenderedContext{}, "what food is best?", "today")

	if !strings.Contains(prompt, "Do not reference analysis data") {
		t.Fatalf("ungrounded variant must forbid referencing analysis data")
	}
	if !strings.Contains(prompt, "do not ask the owner to run an analysis") {
		t.Fatalf("ungrounded variant must forbid requesting analysis")
	}
	if strings.Contains(prompt, "Ground your answer") {
		t.Fatalf("ungrounded variant must not carry the grounded instructions")
	}
}
