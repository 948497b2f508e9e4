// Package rest holds the wire types of the public HTTP API.
package rest

// PredictionRequest is one student's attributes. Numeric attributes are
// pointers so an absent value reaches the range checks as "missing".
type PredictionRequest struct {
	Gender       string   `json:"gender"       validate:"required,oneof=M F"`
	Age          *float64 `json:"age"`
	Address      string   `json:"address"      validate:"required,oneof=Urban Rural"`
	FamilySize   string   `json:"familySize"   validate:"required,oneof=GT3 LE3"`
	ParentStatus string   `json:"parentStatus" validate:"required,oneof=Together Apart"`
	MotherEdu    *int     `json:"motherEdu"    validate:"required,min=0,max=4"`
	FatherEdu    *int     `json:"fatherEdu"    validate:"required,min=0,max=4"`
	MotherJob    string   `json:"motherJob"    validate:"required,oneof=At_home Health Services Teacher Other"`
	FatherJob    string   `json:"fatherJob"    validate:"required,oneof=Teacher Other Services Health Business Farmer"`
	Relationship string   `json:"relationship" validate:"required,oneof=Yes No"`
	Smoker       string   `json:"smoker"       validate:"required,oneof=Yes No"`
	TuitionFee   *float64 `json:"tuitionFee"`
	TimeFriends  *int     `json:"timeFriends"  validate:"required,min=1,max=5"`
	SSCResult    *float64 `json:"sscResult"`
}

type PredictionOutcome string

const (
	PredictionOutcomeSuccess PredictionOutcome = "success"
	PredictionOutcomeInvalid PredictionOutcome = "invalid"
	PredictionOutcomeFailed  PredictionOutcome = "failed"
)

type PredictionResponse struct {
	Outcome PredictionOutcome `json:"outcome"`
	// Message is the text to show to the user as is.
	Message    string   `json:"message"`
	GPA        *float64 `json:"gpa,omitempty"`
	RawGPA     *float64 `json:"rawGpa,omitempty"`
	Clamped    bool     `json:"clamped"`
	Rule       string   `json:"rule,omitempty"`
	Disclaimer string   `json:"disclaimer,omitempty"`
}

type FormWidget string

const (
	FormWidgetRadio    FormWidget = "radio"
	FormWidgetSlider   FormWidget = "slider"
	FormWidgetDropdown FormWidget = "dropdown"
	FormWidgetNumber   FormWidget = "number"
)

// FormField describes one input of the prediction form.
// Min is inclusive. Max is inclusive unless ExclusiveMax is set.
type FormField struct {
	Name         string     `json:"name"`
	Label        string     `json:"label"`
	Widget       FormWidget `json:"widget"`
	Options      []string   `json:"options,omitempty"`
	Min          *float64   `json:"min,omitempty"`
	Max          *float64   `json:"max,omitempty"`
	ExclusiveMax bool       `json:"exclusiveMax,omitempty"`
	Step         *float64   `json:"step,omitempty"`
	Default      string     `json:"default,omitempty"`
}

type Form struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FormField `json:"fields"`
}

// Error is the error body of every non 2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
