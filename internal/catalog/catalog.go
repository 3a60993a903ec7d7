package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"foundercompass/internal/entity"
)

//go:embed questions.json
var questionsJSON []byte

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is a catalog entry. Entries are read-only; the catalog never
// mutates them and serves them in source order.
type Question struct {
	QuestionID         string               `json:"question_id"`
	Category           string               `json:"category"`
	Text               string               `json:"text"`
	Options            []Option             `json:"options"`
	StageApplicability []entity.CompanySize `json:"stage_applicability"`
}

func (q Question) AppliesTo(stage entity.CompanySize) bool {
	for _, s := range q.StageApplicability {
		if s == stage {
			return true
		}
	}
	return false
}

// Catalog holds the static question bank.
type Catalog struct {
	questions []Question
}

// Load parses the embedded question bank.
func Load() (*Catalog, error) {
	return Parse(questionsJSON)
}

func Parse(data []byte) (*Catalog, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return &Catalog{questions: questions}, nil
}

// ForStage returns the questions applicable to the given company size,
// preserving catalog order.
func (c *Catalog) ForStage(stage entity.CompanySize) []Question {
	matched := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		if q.AppliesTo(stage) {
			matched = append(matched, q)
		}
	}
	return matched
}

func (c *Catalog) Len() int {
	return len(c.questions)
}
