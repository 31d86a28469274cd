package submissions

// Submission is one community-contributed salary record, as stored and as
// returned by the listing endpoints. SubmittedAt is the client-supplied
// ISO-8601 timestamp string; it is stored verbatim and used as the sort key.
type Submission struct {
	ID                   string   `json:"id"`
	Position             string   `json:"position"`
	Location             string   `json:"location"`
	Company              string   `json:"company"`
	BaseSalary           float64  `json:"baseSalary"`
	TotalComp            float64  `json:"totalComp"`
	Experience           float64  `json:"experience"`
	SelfEmployed         string   `json:"selfEmployed"`
	ClinicalHoursPerWeek string   `json:"clinicalHoursPerWeek"`
	Benefits             []string `json:"benefits"`
	AdditionalNotes      string   `json:"additionalNotes"`
	SubmittedAt          string   `json:"submittedAt"`
}

// Payload is the inbound submission body before validation. Numeric fields
// are pointers so that an absent or null value can be told apart from zero.
type Payload struct {
	Position             string   `json:"position"`
	Location             string   `json:"location"`
	Company              string   `json:"company"`
	BaseSalary           *float64 `json:"baseSalary"`
	TotalComp            *float64 `json:"totalComp"`
	Experience           *float64 `json:"experience"`
	SelfEmployed         string   `json:"selfEmployed"`
	ClinicalHoursPerWeek string   `json:"clinicalHoursPerWeek"`
	Benefits             []string `json:"benefits"`
	AdditionalNotes      string   `json:"additionalNotes"`
	SubmittedAt          string   `json:"submittedAt"`
}
