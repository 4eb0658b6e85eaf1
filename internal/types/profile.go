package types

// Profile carries the static description of one MBTI personality type.
type Profile struct {
	Code               TypeCode `yaml:"code"`
	Nickname           string   `yaml:"nickname"`
	Description        string   `yaml:"description"`
	CognitiveFunctions string   `yaml:"cognitive_functions"`
	Avatar             string   `yaml:"avatar"`
}

// KnowledgeObject is one stored unit of personality knowledge, mirroring
// the MBTIPersonality class in the vector store.
type KnowledgeObject struct {
	Content  string   `yaml:"content"`
	Type     TypeCode `yaml:"type"`
	Category Category `yaml:"category"`
	Source   string   `yaml:"source"`
}

// SearchHit is one retrieved knowledge fragment with its match score.
type SearchHit struct {
	Content  string
	Category Category
	Score    float32
}

// PersonaResponse is a single generated reply attributed to a type and
// the provider that produced it.
type PersonaResponse struct {
	Type     TypeCode
	Text     string
	Provider Provider
}

// TranscriptEntry records one user query and the replies it received.
type TranscriptEntry struct {
	Query     string
	Responses []PersonaResponse
}

// DiscussionEntry is one contribution to a group discussion. Round
// numbering starts at 1.
type DiscussionEntry struct {
	Type  TypeCode
	Round int
	Text  string
}

// Discussion is a complete group discussion transcript.
type Discussion struct {
	Topic        string
	Participants []TypeCode
	Entries      []DiscussionEntry
}
