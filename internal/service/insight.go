package service

import (
	"math/rand"
	"sync"

	"foundercompass/internal/entity"
)

type NextMoveType string

const (
	NextMoveAction     NextMoveType = "Action"
	NextMoveReflection NextMoveType = "Reflection"
	NextMoveConsult    NextMoveType = "Consult"
)

type NextMove struct {
	Type        NextMoveType `json:"type"`
	Description string       `json:"description"`
	Details     string       `json:"details"`
}

// Insight is the structurally complete payload a generator must produce:
// non-empty labels and insight texts, and a fully populated next move.
type Insight struct {
	MindsetShift            string
	MindsetShiftInsight     string
	OperationalFocus        string
	OperationalFocusInsight string
	NextMove                NextMove
}

// InsightGenerator turns an answer set into report content. Implementations
// never fail; a degraded generator still returns a complete payload. The
// session manager depends only on this interface so the stand-in below can be
// replaced by a real analytical engine.
type InsightGenerator interface {
	Generate(answers entity.AnswerSet) Insight
}

var (
	mindsetShifts = []string{
		"From Doer to Delegator",
		"From Founder to CEO",
		"From Reactive to Proactive",
	}
	operationalFocuses = []string{
		"Streamlined Onboarding",
		"Clear OKRs",
		"Improved Communication Cadence",
	}
	nextMoves = []NextMove{
		{
			Type:        NextMoveAction,
			Description: "Create a 90-day delegation plan.",
			Details:     "Identify 3-5 tasks you can delegate immediately.",
		},
		{
			Type:        NextMoveReflection,
			Description: "Journal on your leadership style.",
			Details:     "What are your top 3 leadership values?",
		},
		{
			Type:        NextMoveConsult,
			Description: "Book a session with a coach.",
			Details:     "Discuss your current challenges and get an outside perspective.",
		},
	}
)

// RandomInsightGenerator picks uniformly from fixed candidate pools. It is a
// stand-in for the future analytical model and ignores the answers entirely.
type RandomInsightGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomInsightGenerator(seed int64) *RandomInsightGenerator {
	return &RandomInsightGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *RandomInsightGenerator) Generate(_ entity.AnswerSet) Insight {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Insight{
		MindsetShift:            mindsetShifts[g.rng.Intn(len(mindsetShifts))],
		MindsetShiftInsight:     "This shift is crucial for scaling your leadership.",
		OperationalFocus:        operationalFocuses[g.rng.Intn(len(operationalFocuses))],
		OperationalFocusInsight: "Focusing here will unlock significant team productivity.",
		NextMove:                nextMoves[g.rng.Intn(len(nextMoves))],
	}
}
