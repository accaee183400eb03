package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList maps to a jsonb array of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// Strength is one strength item of an assessment. Screening assessments only
// carry Point; final assessments also carry Evidence, a quote from the transcript.
type Strength struct {
	Point    string `json:"point"`
	Evidence string `json:"evidence,omitempty"`
}

// StrengthList maps to a jsonb array of strength objects.
type StrengthList []Strength

func (l StrengthList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StrengthList) Scan(src any) error {
	return scanJSON(src, l)
}

// SkillScores maps to a jsonb object of skill name -> 0-100 score. Keys are
// free-form strings; recruiters may add skills outside the role profile taxonomy.
type SkillScores map[string]int

func (s SkillScores) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *SkillScores) Scan(src any) error {
	return scanJSON(src, s)
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into jsonb value", src)
	}
}
