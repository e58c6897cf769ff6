package domain

// FieldType constants define how an intake answer is validated.
const (
	FieldText   = "text"
	FieldNumber = "number"
	FieldChoice = "choice"
)

// Profile is the intake form's working state. Values are keyed by field
// name; Cursor indexes into the fixed field order maintained by the form
// engine. Frozen once Complete is set.
type Profile struct {
	Values   map[string]any `json:"values"`
	Cursor   int            `json:"cursor"`
	Complete bool           `json:"complete"`
}

// NewProfile returns an empty intake state positioned at the first field.
func NewProfile() *Profile {
	return &Profile{Values: make(map[string]any)}
}

// Value returns the stored value for a field, or nil if unanswered.
func (p *Profile) Value(field string) any {
	if p == nil || p.Values == nil {
		return nil
	}
	return p.Values[field]
}

// StringValue returns the stored value as a string, or "" when the field
// is unanswered or not textual.
func (p *Profile) StringValue(field string) string {
	s, _ := p.Value(field).(string)
	return s
}

// ProfileData is the read-only view of a completed profile, split into
// the financial and behavioral subsets plus the derived advisor.
type ProfileData struct {
	Financial          map[string]any `json:"financial_data"`
	Behavioral         map[string]any `json:"behavioral_profile"`
	RecommendedAdvisor Category       `json:"recommended_advisor"`
}
