package domain

// Personality presets for the virtual sales agent.
type Personality string

const (
	PersonalityConsultative Personality = "consultative"
	PersonalityFriendly     Personality = "friendly"
	PersonalityDirect       Personality = "direct"
)

// Tone presets for generated messages.
type Tone string

const (
	ToneFormal  Tone = "formal"
	ToneCasual  Tone = "casual"
	ToneNeutral Tone = "neutral"
)

// BusinessHours gates responses to a daily window. Start, End and
// OffHoursMessage are meaningful only when Enabled is true.
type BusinessHours struct {
	Enabled         bool   `json:"enabled"`
	Start           string `json:"start,omitempty"` // "HH:MM", 24h
	End             string `json:"end,omitempty"`
	OffHoursMessage string `json:"offHoursMessage,omitempty"`
}

// FollowUp configures the escalating re-engagement cadence. Intervals and
// StopOnReply are meaningful only when Enabled is true.
type FollowUp struct {
	Enabled bool `json:"enabled"`
	// Intervals holds the three escalating waits, in hours, between
	// follow-up attempts.
	Intervals   [3]int `json:"intervalsHours"`
	StopOnReply bool   `json:"stopOnReply"`
}

// Features toggles optional capabilities of the conversation executor.
type Features struct {
	VisionAnalysis bool `json:"visionAnalysis"`
	SpeechToText   bool `json:"speechToText"`
}

// GlobalConfig is company-wide agent behavior not tied to any node. It is
// persisted inside the CompanyFlow document and never contains
// editor-transient state.
type GlobalConfig struct {
	AgentName     string        `json:"agentName"`
	Personality   Personality   `json:"personality"`
	Tone          Tone          `json:"tone"`
	UseEmojis     bool          `json:"useEmojis"`
	BusinessHours BusinessHours `json:"businessHours"`
	FollowUp      FollowUp      `json:"followUp"`
	Features      Features      `json:"features"`
	// Instructions is free-text guidance appended to the agent persona.
	Instructions string `json:"instructions,omitempty"`
}

// DefaultGlobalConfig returns the configuration used when a company has no
// saved flow yet.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		AgentName:   "Sol",
		Personality: PersonalityConsultative,
		Tone:        ToneCasual,
		UseEmojis:   true,
		BusinessHours: BusinessHours{
			Enabled:         false,
			Start:           "08:00",
			End:             "18:00",
			OffHoursMessage: "Recebemos sua mensagem! Retornaremos no próximo horário comercial.",
		},
		FollowUp: FollowUp{
			Enabled:     true,
			Intervals:   [3]int{4, 24, 72},
			StopOnReply: true,
		},
		Features: Features{
			VisionAnalysis: true,
			SpeechToText:   true,
		},
	}
}
