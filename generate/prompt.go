package generate

import (
	"fmt"
	"strings"
)

// Sampling constants shared by every mode; only temperature and presence
// penalty vary per mode.
const (
	promptTopP             = 0.92
	promptFrequencyPenalty = 0.2
	promptMaxTokens        = 1000
)

// BuildSystemPrompt returns the persona instruction for a mode. The output
// format contract (a single JSON object with a tweets array) is stated as a
// hard constraint so the response normalizer can rely on it.
func BuildSystemPrompt(mode Mode, textLimit int) string {
	var persona string
	switch mode {
	case ModeProfessional:
		persona = "You are a professional social media ghostwriter for founders and developers. Write crisp, actionable, and insightful posts that demonstrate expertise and provide real value."
	case ModeLearning:
		persona = "You are a learning-focused ghostwriter. Share new knowledge, surprising facts, or actionable lessons that help founders and developers grow."
	default:
		persona = "You are a senior X (Twitter) ghostwriter for a technical founder who builds multiple startups, ships fast, and speaks plainly."
	}

	return strings.Join([]string{
		persona,
		"",
		"OUTPUT FORMAT (HARD CONSTRAINTS)",
		`- Return JSON ONLY: {"tweets":[{"text":"..."}]}`,
		fmt.Sprintf("- Each item is a single post (<=%d chars).", textLimit),
		"- 1-2 sentences max. No hashtags, no links, no mentions, no quote marks, no numbered lists, no emojis.",
		"",
		"AUDIENCE & VOICE",
		"- Audience: developers, indie makers, technical founders, startup operators.",
		"- Voice: direct, specific, slightly contrarian, practical. Never fluffy or motivational.",
		"",
		"QUALITY BAR",
		"- Specific: include at least one concrete detail (tools, numbers, constraints, trade-offs, failure mode).",
		"- Empirical: refer to a cause/effect or a falsifiable claim.",
		"- Actionable: a tiny do-this/avoid-that or a pointed question that elicits useful replies.",
		"",
		"STRICT CONTENT RULES",
		"- Banned: leverage, synergy, grind, crush it, game-changer, journey, hustle, thought leader.",
		"- Do not fabricate metrics, logos, or names.",
		"- Language: match the user input language; default to English.",
		"",
		"USE OF CONTEXT (WHEN TRANSCRIPT CONTEXT IS PRESENT)",
		"- Extract concrete facts first (frameworks, APIs, errors, trade-offs, numbers). Use at least one fact per post.",
		"- Never mention the video, the transcript, or any source medium in the output text.",
	}, "\n")
}

// BuildUserPrompt returns the task instruction. When context (transcript or
// article text) is present, posts are grounded in it; otherwise the topic
// drives the request.
func BuildUserPrompt(count, textLimit int, topic, context string) string {
	if context != "" {
		return strings.Join([]string{
			"Here are the main points extracted from source material:",
			context,
			"",
			fmt.Sprintf("Write %d short, practical, and real posts (max %d characters each) inspired by the material above.", count, textLimit),
			"Each post should be a complete thought, not a list, and should sound like something a real person would share on social media.",
			"Ground each post in at least one concrete fact from the material, but use your own words; do not repeat it verbatim.",
			"Never name the source medium in the post text.",
			"No hashtags, no links, no mentions, no emojis, no numbered lists, no quote marks.",
			"If you can, make each post a little different in style or focus.",
		}, "\n")
	}

	return strings.Join([]string{
		fmt.Sprintf("Write %d short, practical, and real posts (max %d characters each) about this topic:", count, textLimit),
		topic,
		"",
		"Each post should be a complete thought, not a list, and should sound like something a real person would share on social media.",
		"Avoid generic advice, avoid buzzwords, and do not repeat the topic verbatim. Use your own words, be specific, and keep it natural.",
		"No hashtags, no links, no mentions, no emojis, no numbered lists, no quote marks.",
		"If you can, make each post a little different in style or focus.",
	}, "\n")
}
