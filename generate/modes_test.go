package generate

import (
	"strings"
	"testing"
)

func TestParamsFor(t *testing.T) {
	cases := []struct {
		mode            Mode
		wantTemperature float64
		wantPresence    float64
	}{
		{ModeProfessional, 0.6, 0.2},
		{ModeLearning, 0.7, 0.3},
		{ModeReaction, 0.75, 0.4},
		{ModeRelatable, 0.7, 0.35},
		{ModeListicle, 0.65, 0.3},
		{ModeQuestion, 0.65, 0.25},
		{ModeRoutine, 0.6, 0.25},
		{Mode("unknown"), 0.6, 0.25},
	}

	for _, c := range cases {
		t.Run(string(c.mode), func(t *testing.T) {
			p := ParamsFor(c.mode)
			if p.Temperature != c.wantTemperature || p.PresencePenalty != c.wantPresence {
				t.Fatalf("ParamsFor(%q) = %+v; want temp %v presence %v",
					c.mode, p, c.wantTemperature, c.wantPresence)
			}
		})
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range []Mode{ModeProfessional, ModeLearning, ModeReaction, ModeRelatable, ModeListicle, ModeQuestion, ModeRoutine} {
		if !ValidMode(m) {
			t.Fatalf("ValidMode(%q) = false", m)
		}
	}
	if ValidMode(Mode("casual")) {
		t.Fatalf("ValidMode(casual) = true; want false")
	}
}

func TestFallbackTopic(t *testing.T) {
	if FallbackTopic(ModeProfessional) == FallbackTopic(ModeReaction) {
		t.Fatalf("professional fallback should differ from the generic one")
	}
	for _, m := range []Mode{ModeProfessional, ModeLearning, ModeReaction, Mode("unknown")} {
		if FallbackTopic(m) == "" {
			t.Fatalf("FallbackTopic(%q) is empty", m)
		}
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	p := BuildSystemPrompt(ModeProfessional, 220)
	if !strings.Contains(p, `{"tweets":[{"text":"..."}]}`) {
		t.Fatalf("system prompt missing output format contract:\n%s", p)
	}
	if !strings.Contains(p, "<=220 chars") {
		t.Fatalf("system prompt missing text limit:\n%s", p)
	}
}

func TestBuildUserPrompt(t *testing.T) {
	withContext := BuildUserPrompt(6, 280, "ignored topic", "extracted facts here")
	if !strings.Contains(withContext, "extracted facts here") {
		t.Fatalf("context prompt missing context:\n%s", withContext)
	}
	if !strings.Contains(withContext, "Write 6 short") {
		t.Fatalf("context prompt missing count:\n%s", withContext)
	}

	noContext := BuildUserPrompt(3, 200, "shipping fast", "")
	if !strings.Contains(noContext, "shipping fast") {
		t.Fatalf("topic prompt missing topic:\n%s", noContext)
	}
	if strings.Contains(noContext, "source material") {
		t.Fatalf("topic prompt should not mention source material:\n%s", noContext)
	}
}
