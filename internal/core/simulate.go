package core

import (
	"fmt"
	"strings"

	"mbti-chat/internal/types"
)

// Simulator produces canned persona responses without any LLM. It is the
// final fallback in the provider cascade and the whole engine when no
// provider is configured. Responses are deterministic for a given query
// and type.
type Simulator struct{}

func NewSimulator() *Simulator {
	return &Simulator{}
}

var greetingResponses = map[string][]string{
	"hello":       {"Hi there!", "Hello!", "Hey!", "Greetings!"},
	"hi":          {"Hi!", "Hello there!", "Hey!"},
	"hey":         {"Hey!", "Hi there!", "Hello!"},
	"wassup":      {"Hey!", "What's going on?", "Not much, what's up with you?"},
	"how are you": {"I'm doing well, thanks for asking!", "Pretty good! How about you?"},
}

// greetingKeys fixes match precedence, longest phrase first.
var greetingKeys = []string{"how are you", "wassup", "hello", "hey", "hi"}

var feelerTypes = map[types.TypeCode]struct{}{
	types.INFP: {}, types.ISFP: {}, types.INFJ: {}, types.ISFJ: {},
}

var driverTypes = map[types.TypeCode]struct{}{
	types.ENTP: {}, types.ESTP: {}, types.ENTJ: {}, types.ESTJ: {},
}

var warmTypes = map[types.TypeCode]struct{}{
	types.ENFP: {}, types.ESFP: {}, types.ENFJ: {}, types.ESFJ: {},
}

// Respond generates a canned reply for the type. Keyword rules fire
// first (greetings, group whereabouts, sports); otherwise a per-type
// template frames the query.
func (s *Simulator) Respond(code types.TypeCode, query string) string {
	lower := strings.ToLower(query)

	for _, key := range greetingKeys {
		if strings.Contains(lower, key) {
			opening := greetingResponses[key][0]
			switch {
			case isMember(warmTypes, code):
				return opening + " So great to hear from you! What's been on your mind lately?"
			case isMember(driverTypes, code):
				return opening + " What's happening? Anything interesting going on?"
			case isMember(feelerTypes, code):
				return opening + " It's nice to connect with you today. How are you feeling?"
			default:
				return opening + " What can I help you with today?"
			}
		}
	}

	if strings.Contains(lower, "where") && (strings.Contains(lower, "everyone") || strings.Contains(lower, "people")) {
		switch code {
		case types.ENFP, types.ESFP:
			return "Oh, I was wondering the same thing! Maybe they're all having fun somewhere without us? Let's go find them!"
		case types.ENTJ, types.ESTJ:
			return "Everyone's probably busy with their tasks. I've been organizing my schedule for maximum efficiency. Did you need someone specific?"
		case types.INFJ, types.ENFJ:
			return "I've been wondering if everyone's okay actually. I hope they're just busy and not dealing with anything difficult. How about we check in on them?"
		case types.INTJ, types.INTP:
			return "I hadn't really noticed their absence. I've been caught up in my own thoughts. Is there something specific you wanted to discuss with the group?"
		default:
			return "Not sure where everyone went! What were you hoping to do with the group?"
		}
	}

	if containsAny(lower, "sport", "swimming", "running", "workout") {
		if response, ok := sportsResponses[code]; ok {
			return response
		}
	}

	if template, ok := genericTemplates[code]; ok {
		return fmt.Sprintf(template, query)
	}
	return fmt.Sprintf("Tell me more about your thoughts on %s. I'd love to hear your perspective!", query)
}

func isMember(set map[types.TypeCode]struct{}, code types.TypeCode) bool {
	_, ok := set[code]
	return ok
}

func containsAny(text string, keys ...string) bool {
	for _, key := range keys {
		if strings.Contains(text, key) {
			return true
		}
	}
	return false
}

var sportsResponses = map[types.TypeCode]string{
	types.INTJ: "I see sports as a strategic optimization of physical capabilities. Swimming is efficient because it works multiple muscle groups with minimal joint impact. Have you analyzed which sport offers the best long-term benefits for your specific physiology?",
	types.INTP: "Interesting choice. Swimming has fascinating physics involved, particularly the interaction between fluid dynamics and biomechanics. I've been thinking about the theoretically perfect swimming form that would maximize propulsion while minimizing energy expenditure.",
	types.ENTJ: "Swimming is excellent for developing discipline and endurance. I've incorporated it into my weekly routine because it's time-efficient and builds cardio without the joint stress of running. What does your weekly training schedule look like?",
	types.ENTP: "Swimming? Have you considered rock climbing? Or maybe parkour? There are so many fascinating ways to challenge your body! I keep switching between sports because each one presents new and interesting problems to solve.",
	types.INFJ: "I love how swimming feels like a moving meditation. The rhythm of breathing and the sensation of gliding through water can be so peaceful and centering. Does it help you connect with yourself too?",
	types.INFP: "Swimming has this beautiful feeling of freedom, doesn't it? I love how it's just you and the water, and you can feel completely in your own world. It's almost poetic how it can be both calming and invigorating.",
	types.ENFJ: "Swimming is wonderful! I've actually been organizing a community swim group to help people stay active together. The social aspect of sports can be so uplifting. Would you be interested in joining something like that?",
	types.ENFP: "Swimming is amazing! I tried underwater photography last summer and it was incredible! Have you ever done any fun swimming activities beyond just laps? There are so many exciting possibilities!",
	types.ISTJ: "Swimming is a reliable, proven form of exercise with documented health benefits. I've been swimming three times a week for the past five years and have found it to be consistently effective for maintaining fitness.",
	types.ISFJ: "Swimming is such a nurturing activity, isn't it? I appreciate how gentle it is on the body while still providing a good workout. My mom had joint problems and swimming really helped her stay active.",
	types.ESTJ: "Swimming is efficient and practical. I schedule my swim sessions twice a week and track my lap times. Have you established a regular swimming routine? Consistency is key to seeing results.",
	types.ESFJ: "I love swimming too! The pool is such a great place to catch up with friends while getting exercise. Our community pool has become such a wonderful social hub. Do you swim with anyone regularly?",
	types.ISTP: "Swimming is technically interesting. I've been tweaking my stroke mechanics to increase efficiency. Have you tried analyzing your technique with underwater video? You can spot inefficiencies that way.",
	types.ISFP: "There's something so beautiful about the feeling of water flowing around you while swimming. I especially love outdoor swimming, since the connection with nature makes the experience so much more special.",
	types.ESTP: "Swimming is awesome! I've been getting into open water swimming for the extra challenge. Nothing beats the rush of swimming in a lake or ocean! Have you ever tried any competitive swimming events? They're a blast!",
	types.ESFP: "Swimming is so fun! I joined a water aerobics class and it's a total party! The music, the people, the splashing around... it's exercise that doesn't feel like exercise! You should come with me sometime!",
}

var genericTemplates = map[types.TypeCode]string{
	types.INTJ: "I've been considering %s from a strategic perspective. I see some interesting patterns and long-term implications. What specific aspect are you most interested in analyzing?",
	types.INTP: "That's an intriguing topic to explore. I've been developing a theoretical framework about %s that examines the underlying logical principles. Would you like me to share my analysis so far?",
	types.ENTJ: "Let's address %s efficiently. I've found that developing a clear action plan is the best approach. What specific outcomes are you looking to achieve here?",
	types.ENTP: "%s? That opens up so many fascinating possibilities! I've been playing devil's advocate with myself about this very topic. Have you considered the counterintuitive perspective?",
	types.INFJ: "I sense there's something deeper you're exploring with this question about %s. I've been reflecting on how this connects to our broader purpose. What meaning are you hoping to find here?",
	types.INFP: "I've been feeling quite thoughtful about %s lately. It really resonates with my values around authentic self-expression. How does this topic connect with what matters most to you?",
	types.ENFJ: "I appreciate you bringing up %s! I've been thinking about how this affects everyone in our circle. How can we approach this in a way that helps everyone grow and feel supported?",
	types.ENFP: "Oh! %s is something I'm super excited about! I just had this amazing idea about it yesterday that connects to like five other interesting concepts! Want to brainstorm about it together?",
	types.ISTJ: "Regarding %s, I believe in focusing on the established facts and reliable information. Based on my experience, consistency and attention to detail are key here. What specific aspects need clarification?",
	types.ISFJ: "I care about how %s affects the people involved. I remember when we dealt with something similar before, and being supportive of each person's needs made all the difference. How can I help with this situation?",
	types.ESTJ: "Let's be practical about %s. I find that clear procedures and defined responsibilities work best. Have you established a structured approach to address this yet?",
	types.ESFJ: "I want to make sure everyone feels good about %s. Group harmony is so important! What can I do to help make this situation better for everyone involved?",
	types.ISTP: "Let me break down %s into its practical components. I find that hands-on problem-solving is more effective than excessive planning. What specific issue needs troubleshooting?",
	types.ISFP: "%s really speaks to me on a personal level. I try to approach each situation authentically and in the moment. How does this resonate with your own personal experience?",
	types.ESTP: "Let's take action on %s! Why overthink when we could be doing something about it right now? What's the immediate next step we can take to make progress?",
	types.ESFP: "%s? That sounds like an opportunity for some fun! Life's too short to be serious all the time. How can we turn this into an enjoyable experience for everyone?",
}
