package gpa

import (
	"fmt"
)

const Disclaimer = "⚠️ This is a prediction based on historical data."

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid"
	OutcomeFailed  Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

// Rule names the validation rule a request violated.
type Rule string

const (
	RuleNone        Rule = ""
	RuleAge         Rule = "age"
	RuleSSCResult   Rule = "ssc_result"
	RuleTuitionFee  Rule = "tuition_fee"
	RuleMotherEdu   Rule = "M_Edu"
	RuleFatherEdu   Rule = "F_Edu"
	RuleTimeFriends Rule = "time_friends"
	RuleCategory    Rule = "category"
)

// Result is the outcome of one prediction. Exactly one of the success fields
// (GPA, Raw, Clamped) or the failure fields (Rule, Err) is meaningful,
// depending on Outcome.
type Result struct {
	Outcome Outcome
	// GPA is the model output limited to [MinGPA, MaxGPA].
	GPA float64
	// Raw is the model output before clamping.
	Raw float64
	// Clamped reports that Raw was outside the GPA scale.
	Clamped bool
	Rule    Rule
	Err     error

	message string
}

func success(raw float64) Result {
	gpa, clamped := Clamp(raw, MinGPA, MaxGPA)

	return Result{
		Outcome: OutcomeSuccess,
		GPA:     gpa,
		Raw:     raw,
		Clamped: clamped,
		message: fmt.Sprintf("🎓 Predicted HSC GPA: %.2f", gpa),
	}
}

func invalid(v violation) Result {
	return Result{
		Outcome: OutcomeInvalid,
		Rule:    v.rule,
		Err:     v.err(),
		message: v.message,
	}
}

func failed(err error) Result {
	return Result{
		Outcome: OutcomeFailed,
		Err:     err,
		message: "❌ Prediction failed: " + err.Error(),
	}
}

// Message is the text shown to the user, verbatim.
func (r Result) Message() string {
	return r.message
}

func (r Result) String() string {
	return r.message
}

func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}
