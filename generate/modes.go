package generate

// Mode selects the writing style and the sampling parameters for a
// generation request.
type Mode string

const (
	ModeProfessional Mode = "professional"
	ModeLearning     Mode = "learning"
	ModeReaction     Mode = "reaction"
	ModeRelatable    Mode = "relatable"
	ModeListicle     Mode = "listicle"
	ModeQuestion     Mode = "question"
	ModeRoutine      Mode = "routine"
)

// Params are the mode-specific sampling knobs sent to the generator.
type Params struct {
	Temperature     float64
	PresencePenalty float64
}

var modeParams = map[Mode]Params{
	ModeProfessional: {Temperature: 0.6, PresencePenalty: 0.2},
	ModeLearning:     {Temperature: 0.7, PresencePenalty: 0.3},
	ModeReaction:     {Temperature: 0.75, PresencePenalty: 0.4},
	ModeRelatable:    {Temperature: 0.7, PresencePenalty: 0.35},
	ModeListicle:     {Temperature: 0.65, PresencePenalty: 0.3},
	ModeQuestion:     {Temperature: 0.65, PresencePenalty: 0.25},
	ModeRoutine:      {Temperature: 0.6, PresencePenalty: 0.25},
}

// ValidMode reports whether m is a known generation mode.
func ValidMode(m Mode) bool {
	_, ok := modeParams[m]
	return ok
}

// ParamsFor returns the sampling parameters for a mode. Unknown modes get
// the routine defaults.
func ParamsFor(m Mode) Params {
	if p, ok := modeParams[m]; ok {
		return p
	}
	return Params{Temperature: 0.6, PresencePenalty: 0.25}
}

var fallbackTopics = map[Mode]string{
	ModeProfessional: "Share a professional insight or actionable advice for founders or developers.",
	ModeLearning:     "Share new knowledge or a surprising lesson that helps founders or developers grow.",
}

const defaultFallbackTopic = "Share a useful, specific, and conversation-worthy post for founders or developers."

// FallbackTopic returns the substitute topic used when a request arrives
// with an empty one.
func FallbackTopic(m Mode) string {
	if t, ok := fallbackTopics[m]; ok {
		return t
	}
	return defaultFallbackTopic
}
