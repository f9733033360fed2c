package models

// Failure names why a generation call produced no usable result.
type Failure string

const (
	FailureNone         Failure = ""
	FailureNoCredential Failure = "no_credential"
	FailureConnection   Failure = "connection_failed"
	FailureMalformed    Failure = "malformed_response"
	FailureEmpty        Failure = "empty_response"
)

// TermResult is the outcome of synthesizing a new term. Term is nil whenever
// Failure is set.
type TermResult struct {
	Term    *Term   `json:"term,omitempty"`
	Failure Failure `json:"failure,omitempty"`
}

// OK reports whether a term was produced.
func (r TermResult) OK() bool {
	return r.Failure == FailureNone && r.Term != nil
}

// ExplainResult is the outcome of a tutor explanation. Text is always
// displayable: the markdown answer on success, a fixed Korean message otherwise.
type ExplainResult struct {
	Text    string  `json:"text"`
	Failure Failure `json:"failure,omitempty"`
}

// OK reports whether Text came from the model.
func (r ExplainResult) OK() bool {
	return r.Failure == FailureNone
}
