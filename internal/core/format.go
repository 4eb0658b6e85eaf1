package core

import (
	"fmt"
	"math/rand"
	"strings"

	"mbti-chat/internal/types"
)

// Formatter normalizes raw model output into persona-styled text.
type Formatter struct {
	rng *rand.Rand
}

func NewFormatter(rng *rand.Rand) *Formatter {
	return &Formatter{rng: rng}
}

var emojiOptions = []string{"😊", "✨", "💫", "🌟", "💡", "🎉", "🌈"}

// FormatResponse strips persona prefixes the model sometimes emits and
// applies per-type punctuation style: expressive types get an
// exclamation mark when the text ends flat, and emoji-prone types get an
// emoji about half the time.
func (f *Formatter) FormatResponse(text string, code types.TypeCode) string {
	text = strings.TrimSpace(text)
	prefixes := []string{
		fmt.Sprintf("%s:", code),
		"As an MBTI personality, ",
		fmt.Sprintf("As an %s personality, ", code),
		fmt.Sprintf("As an %s, ", code),
		fmt.Sprintf("As a %s, ", code),
		"Response: ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(text, prefix) {
			text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
		}
	}

	if isMember(expressiveTypes, code) {
		if !strings.Contains(text, "!") && !strings.HasSuffix(text, "?") {
			text += "!"
		}
		if isMember(emojiProneTypes, code) && f.rng.Float64() < 0.5 {
			text += " " + emojiOptions[f.rng.Intn(len(emojiOptions))]
		}
	}
	return text
}
