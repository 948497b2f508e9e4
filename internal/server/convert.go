package server

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/domain/value"
	"hsc_predictor/pkg/rest"
)

// Out of scale on purpose: an unusable slider value fails its range rule.
const invalidOrdinal = -1

func newDomainRequest(r rest.PredictionRequest) entity.PredictionRequest {
	return entity.PredictionRequest{
		Gender:       value.Gender(r.Gender),
		Age:          lo.FromPtrOr(r.Age, entity.Missing()),
		Address:      value.Address(r.Address),
		FamilySize:   value.FamilySize(r.FamilySize),
		ParentStatus: value.ParentStatus(r.ParentStatus),
		MotherEdu:    value.EducationLevel(lo.FromPtrOr(r.MotherEdu, invalidOrdinal)),
		FatherEdu:    value.EducationLevel(lo.FromPtrOr(r.FatherEdu, invalidOrdinal)),
		MotherJob:    value.MotherJob(r.MotherJob),
		FatherJob:    value.FatherJob(r.FatherJob),
		Relationship: value.YesNo(r.Relationship),
		Smoker:       value.YesNo(r.Smoker),
		TuitionFee:   lo.FromPtrOr(r.TuitionFee, entity.Missing()),
		TimeFriends:  value.FriendsTime(lo.FromPtrOr(r.TimeFriends, invalidOrdinal)),
		SSCResult:    lo.FromPtrOr(r.SSCResult, entity.Missing()),
	}
}

// newDomainRequestFromForm never fails: blank or unparsable numbers become
// missing values and the orchestrator answers with the matching message.
func newDomainRequestFromForm(form url.Values) entity.PredictionRequest {
	return entity.PredictionRequest{
		Gender:       value.Gender(formString(form, entity.FeatureGender)),
		Age:          formFloat(form, entity.FeatureAge),
		Address:      value.Address(formString(form, entity.FeatureAddress)),
		FamilySize:   value.FamilySize(formString(form, entity.FeatureFamilySize)),
		ParentStatus: value.ParentStatus(formString(form, entity.FeatureParentStatus)),
		MotherEdu:    value.EducationLevel(formInt(form, entity.FeatureMotherEdu)),
		FatherEdu:    value.EducationLevel(formInt(form, entity.FeatureFatherEdu)),
		MotherJob:    value.MotherJob(formString(form, entity.FeatureMotherJob)),
		FatherJob:    value.FatherJob(formString(form, entity.FeatureFatherJob)),
		Relationship: value.YesNo(formString(form, entity.FeatureRelationship)),
		Smoker:       value.YesNo(formString(form, entity.FeatureSmoker)),
		TuitionFee:   formFloat(form, entity.FeatureTuitionFee),
		TimeFriends:  value.FriendsTime(formInt(form, entity.FeatureTimeFriends)),
		SSCResult:    formFloat(form, entity.FeatureSSCResult),
	}
}

func formString(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

func formFloat(form url.Values, key string) float64 {
	s := formString(form, key)
	if s == "" {
		return entity.Missing()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return entity.Missing()
	}

	return v
}

func formInt(form url.Values, key string) int {
	v, err := strconv.Atoi(formString(form, key))
	if err != nil {
		return invalidOrdinal
	}

	return v
}

func newRESTPredictionResponse(result gpa.Result) rest.PredictionResponse {
	response := rest.PredictionResponse{
		Outcome: rest.PredictionOutcome(result.Outcome),
		Message: result.Message(),
		Clamped: result.Clamped,
		Rule:    string(result.Rule),
	}

	if result.OK() {
		response.GPA = lo.ToPtr(result.GPA)
		response.Disclaimer = gpa.Disclaimer

		// JSON has no infinities.
		if !math.IsInf(result.Raw, 0) {
			response.RawGPA = lo.ToPtr(result.Raw)
		}
	}

	return response
}
