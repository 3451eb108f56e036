package question

import "strings"

// Question is a multiple-choice question as served over the wire.
// subject and use are label sets; correct, responseD and remark are optional.
type Question struct {
	Question  string   `json:"question"`
	Subject   []string `json:"subject"`
	Use       []string `json:"use"`
	Correct   []string `json:"correct,omitempty"`
	ResponseA string   `json:"responseA"`
	ResponseB string   `json:"responseB"`
	ResponseC string   `json:"responseC"`
	ResponseD string   `json:"responseD,omitempty"`
	Remark    string   `json:"remark,omitempty"`
}

// UseValue is the record's test-type cell as a single value: the comma-join
// of the use labels, matching the undelimited cell in the source file.
// Test-type filtering compares this scalar for equality; category filtering
// is a set-intersection test on Subject. The asymmetry is deliberate.
func (q Question) UseValue() string {
	return strings.Join(q.Use, ",")
}

// SubjectCell and CorrectCell render the label sets back into the flat
// single-cell form used by the list endpoint.
func (q Question) SubjectCell() string { return strings.Join(q.Subject, ",") }
func (q Question) CorrectCell() string { return strings.Join(q.Correct, ",") }

// Valid reports whether the record is well-formed: prompt and the first three
// response options present, at least one subject and one use label.
func (q Question) Valid() bool {
	if q.Question == "" || q.ResponseA == "" || q.ResponseB == "" || q.ResponseC == "" {
		return false
	}
	if len(q.Subject) == 0 || len(q.Use) == 0 {
		return false
	}
	for _, s := range q.Subject {
		if s == "" {
			return false
		}
	}
	for _, u := range q.Use {
		if u == "" {
			return false
		}
	}
	return true
}

func (q Question) matches(testType string, categories []string) bool {
	for _, c := range categories {
		for _, s := range q.Subject {
			if s == c {
				return true
			}
		}
	}
	return q.UseValue() == testType
}
