package entity

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
)

var ErrMalformedAnswer = errors.New("malformed answer value")

// AnswerSet maps a question key to the value the client submitted for it.
type AnswerSet map[string]AnswerValue

// JSON renders the set for jsonb storage.
func (a AnswerSet) JSON() (datatypes.JSON, error) {
	if a == nil {
		a = AnswerSet{}
	}
	bytes, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(bytes), nil
}

type AnswerKind int

const (
	AnswerText AnswerKind = iota
	AnswerNumber
	AnswerBool
	AnswerList
)

// AnswerValue accepts exactly the shapes the questionnaire UI produces: a
// selected option (string), a numeric or boolean input, or a multi-select
// (list of strings). Nested objects and mixed arrays fail to decode.
type AnswerValue struct {
	Kind   AnswerKind
	Text   string
	Number float64
	Bool   bool
	List   []string
}

func TextAnswer(value string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: value}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = AnswerValue{Kind: AnswerText, Text: text}
		return nil
	}
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*v = AnswerValue{Kind: AnswerNumber, Number: number}
		return nil
	}
	var boolean bool
	if err := json.Unmarshal(data, &boolean); err == nil {
		*v = AnswerValue{Kind: AnswerBool, Bool: boolean}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = AnswerValue{Kind: AnswerList, List: list}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMalformedAnswer, string(data))
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerNumber:
		return json.Marshal(v.Number)
	case AnswerBool:
		return json.Marshal(v.Bool)
	case AnswerList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Text)
	}
}
