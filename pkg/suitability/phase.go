package suitability

// Phase is the caller-side view state of a recommendation session.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseAnalyzing Phase = "analyzing"
	PhaseResults   Phase = "results"
	PhaseDetails   Phase = "details"
)

var transitions = map[Phase][]Phase{
	PhaseSetup:     {PhaseAnalyzing},
	PhaseAnalyzing: {PhaseResults},
	PhaseResults:   {PhaseDetails, PhaseSetup},
	PhaseDetails:   {PhaseResults},
}

// CanTransition reports whether a session may move from one phase to another.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
