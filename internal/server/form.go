package server

import (
	"strconv"

	"github.com/samber/lo"

	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/domain/value"
	"hsc_predictor/pkg/rest"
)

const (
	formTitle       = "📊 HSC Result Predictor (Bangladesh)"
	formDescription = "Predict HSC GPA using a Random Forest model trained on historical student data."
)

// newForm lists the inputs in the order the model's schema defines them.
// Numeric ranges come from the orchestrator's bounds so the page and the
// validation messages never disagree.
func newForm(b gpa.Bounds) rest.Form {
	return rest.Form{
		Title:       formTitle,
		Description: formDescription,
		Fields: []rest.FormField{
			radio(entity.FeatureGender, "Gender", value.Strings(value.Genders)),
			exclusiveMax(number(entity.FeatureAge, "Age", b.AgeMin, b.AgeMax, "18")),
			radio(entity.FeatureAddress, "Address", value.Strings(value.Addresses)),
			radio(entity.FeatureFamilySize, "Family Size", value.Strings(value.FamilySizes)),
			radio(entity.FeatureParentStatus, "Parents' Living Status", value.Strings(value.ParentStatuses)),
			slider(entity.FeatureMotherEdu, "Mother's Education Level", value.EducationNone, value.EducationHigher),
			slider(entity.FeatureFatherEdu, "Father's Education Level", value.EducationNone, value.EducationHigher),
			dropdown(entity.FeatureMotherJob, "Mother's Occupation", value.Strings(value.MotherJobs)),
			dropdown(entity.FeatureFatherJob, "Father's Occupation", value.Strings(value.FatherJobs)),
			radio(entity.FeatureRelationship, "In a Relationship", value.Strings(value.YesNos)),
			radio(entity.FeatureSmoker, "Smoker", value.Strings(value.YesNos)),
			number(entity.FeatureTuitionFee, "Monthly Tuition Fee (BDT)", b.TuitionMin, b.TuitionMax, ""),
			slider(entity.FeatureTimeFriends, "Time Spent with Friends", value.FriendsTimeMin, value.FriendsTimeMax),
			number(entity.FeatureSSCResult, "SSC Result (GPA)", b.SSCMin, b.SSCMax, ""),
		},
	}
}

func radio(name, label string, options []string) rest.FormField {
	return rest.FormField{
		Name:    name,
		Label:   label,
		Widget:  rest.FormWidgetRadio,
		Options: options,
	}
}

func dropdown(name, label string, options []string) rest.FormField {
	return rest.FormField{
		Name:    name,
		Label:   label,
		Widget:  rest.FormWidgetDropdown,
		Options: options,
	}
}

func slider[T ~int](name, label string, lower, upper T) rest.FormField {
	return rest.FormField{
		Name:    name,
		Label:   label,
		Widget:  rest.FormWidgetSlider,
		Min:     lo.ToPtr(float64(lower)),
		Max:     lo.ToPtr(float64(upper)),
		Step:    lo.ToPtr(1.0),
		Default: strconv.Itoa(int(lower)),
	}
}

func number(name, label string, lower, upper float64, def string) rest.FormField {
	return rest.FormField{
		Name:    name,
		Label:   label,
		Widget:  rest.FormWidgetNumber,
		Min:     lo.ToPtr(lower),
		Max:     lo.ToPtr(upper),
		Default: def,
	}
}

// Age is accepted while strictly below its upper bound.
func exclusiveMax(f rest.FormField) rest.FormField {
	f.ExclusiveMax = true

	return f
}
