package core

import (
	"fmt"
	"strings"

	"mbti-chat/internal/types"
)

// personaPromptTemplate is the system prompt for embodying a type. The
// placeholders are, in order: type code, type code, trait summary.
const personaPromptTemplate = `You are a chatbot that embodies the %s personality type from the Myers-Briggs Type Indicator.

%s personalities are %s.

Respond as if you are someone with this personality type, expressing their natural style:
- Use vocabulary and expressions typical for this type
- Prioritize the values important to this type
- Approach problems in the way this type would
- Make it feel like a casual conversation with a friend, not a formal analysis
- Do NOT mention that you are roleplaying or simulating a personality`

// generationPromptTemplate asks the LLM to author knowledge-base content
// for one type and category.
const generationPromptTemplate = `Create a detailed description of the %s personality type's %s.
Include specific traits, tendencies, strengths, weaknesses, and examples.
Write approximately 500-800 words in an educational, informative style.`

// generationSystemPrompt frames the knowledge generation request.
const generationSystemPrompt = `You are an expert on MBTI personality psychology.`

// traitSummaries describe each type for persona prompts, mirroring the
// tone of the embedded profile descriptions.
var traitSummaries = map[types.TypeCode]string{
	types.INTJ: "strategic, analytical, and independent with a focus on long-term plans and systems thinking",
	types.INTP: "logical, theoretical, and objective with a focus on analyzing concepts and solving complex problems",
	types.ENTJ: "decisive, organized, and efficient with a focus on leadership and achieving goals",
	types.ENTP: "innovative, debating, and curious with a focus on exploring possibilities and challenging ideas",
	types.INFJ: "insightful, idealistic, and empathetic with a focus on connecting with others and finding meaning",
	types.INFP: "compassionate, creative, and authentic with a focus on personal values and helping others",
	types.ENFJ: "charismatic, supportive, and inspirational with a focus on bringing out the best in people",
	types.ENFP: "enthusiastic, creative, and people-oriented with a focus on possibilities and connections",
	types.ISTJ: "practical, reliable, and detail-oriented with a focus on responsibility and tradition",
	types.ISFJ: "nurturing, detailed, and loyal with a focus on supporting others and maintaining harmony",
	types.ESTJ: "organized, practical, and direct with a focus on getting things done efficiently",
	types.ESFJ: "warm, social, and conscientious with a focus on caring for others and maintaining harmony",
	types.ISTP: "pragmatic, logical, and adaptable with a focus on understanding systems and solving problems",
	types.ISFP: "sensitive, creative, and present-oriented with a focus on aesthetic experiences and authenticity",
	types.ESTP: "energetic, practical, and adaptable with a focus on immediate experiences and problem-solving",
	types.ESFP: "spontaneous, enthusiastic, and social with a focus on enjoying life and bringing joy to others",
}

// TraitSummary returns the short trait description used in prompts.
func TraitSummary(code types.TypeCode) string {
	if summary, ok := traitSummaries[code]; ok {
		return summary
	}
	return "unique and interesting"
}

// SystemPrompt builds the persona system prompt for a type, appending
// retrieved knowledge fragments as grounding context when present.
func SystemPrompt(code types.TypeCode, hits []types.SearchHit) string {
	prompt := fmt.Sprintf(personaPromptTemplate, code, code, TraitSummary(code))
	if len(hits) == 0 {
		return prompt
	}
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nBackground on your personality type, drawn from the knowledge base:\n")
	for _, hit := range hits {
		fmt.Fprintf(&b, "\n[%s]\n%s\n", hit.Category, hit.Content)
	}
	return b.String()
}

// GenerationPrompt builds the knowledge authoring prompt for one type
// and category. Category names read naturally with underscores replaced.
func GenerationPrompt(code types.TypeCode, category types.Category) (system string, user string) {
	topic := strings.ReplaceAll(string(category), "_", " ")
	return generationSystemPrompt, fmt.Sprintf(generationPromptTemplate, code, topic)
}

// DiscussionPrompt builds the prompt for rounds after the first, giving
// each participant the previous round's comments from the others.
func DiscussionPrompt(topic string, others []types.PersonaResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\nHere are the comments from others in our discussion:\n", topic)
	for _, other := range others {
		fmt.Fprintf(&b, "%s: %s\n", other.Type, other.Text)
	}
	b.WriteString("\nHow would you respond to these perspectives?")
	return b.String()
}
