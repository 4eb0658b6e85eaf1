package types

// TypeCode is a four-letter MBTI type code such as "INTJ".
type TypeCode string

const (
	INTJ TypeCode = "INTJ"
	INTP TypeCode = "INTP"
	ENTJ TypeCode = "ENTJ"
	ENTP TypeCode = "ENTP"
	INFJ TypeCode = "INFJ"
	INFP TypeCode = "INFP"
	ENFJ TypeCode = "ENFJ"
	ENFP TypeCode = "ENFP"
	ISTJ TypeCode = "ISTJ"
	ISFJ TypeCode = "ISFJ"
	ESTJ TypeCode = "ESTJ"
	ESFJ TypeCode = "ESFJ"
	ISTP TypeCode = "ISTP"
	ISFP TypeCode = "ISFP"
	ESTP TypeCode = "ESTP"
	ESFP TypeCode = "ESFP"
)

// AllTypes lists every MBTI type code in canonical order.
var AllTypes = []TypeCode{
	INTJ, INTP, ENTJ, ENTP,
	INFJ, INFP, ENFJ, ENFP,
	ISTJ, ISFJ, ESTJ, ESFJ,
	ISTP, ISFP, ESTP, ESFP,
}

// IsValidType reports whether code is one of the 16 MBTI type codes.
func IsValidType(code TypeCode) bool {
	for _, t := range AllTypes {
		if t == code {
			return true
		}
	}
	return false
}

type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderLlamaCloud Provider = "llama-cloud"
	ProviderSimulation Provider = "simulation"
)

// Category names a knowledge-base content category for a personality type.
type Category string

const (
	CategoryCommunicationStyle   Category = "communication_style"
	CategoryCognitiveFunctions   Category = "cognitive_functions"
	CategoryValuesAndMotivations Category = "values_and_motivations"
	CategoryStressReactions      Category = "stress_reactions"
	CategoryCareerPreferences    Category = "career_preferences"
	CategoryRelationshipPatterns Category = "relationship_patterns"
)

// AllCategories lists every knowledge category in import order.
var AllCategories = []Category{
	CategoryCommunicationStyle,
	CategoryCognitiveFunctions,
	CategoryValuesAndMotivations,
	CategoryStressReactions,
	CategoryCareerPreferences,
	CategoryRelationshipPatterns,
}

// CheckStatus classifies a single diagnostic check outcome.
type CheckStatus string

const (
	CheckStatusOK    CheckStatus = "ok"
	CheckStatusWarn  CheckStatus = "warn"
	CheckStatusError CheckStatus = "error"
)
