package gpa

import (
	"fmt"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"hsc_predictor/internal/domain"
	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/pkg/errcodes"
)

type violation struct {
	rule    Rule
	code    failure.ErrorCode
	message string
}

func (v violation) err() error {
	return domain.NewError(v.code, v.message)
}

// check applies the rules in a fixed order and returns the first one the
// request violates. Missing numerics are NaN and fail their range check.
func (b Bounds) check(req entity.PredictionRequest) (violation, bool) {
	switch {
	case entity.IsMissing(req.Age) || req.Age < b.AgeMin || req.Age >= b.AgeMax:
		return violation{
			rule:    RuleAge,
			code:    errcodes.InvalidAge,
			message: fmt.Sprintf("❌ Please enter a valid age (%s to %s).", num(b.AgeMin), num(b.AgeMax)),
		}, false
	case entity.IsMissing(req.SSCResult) || req.SSCResult < b.SSCMin || req.SSCResult > b.SSCMax:
		return violation{
			rule:    RuleSSCResult,
			code:    errcodes.InvalidSSCResult,
			message: fmt.Sprintf("❌ Please enter a valid SSC result (%.2f to %.2f).", b.SSCMin, b.SSCMax),
		}, false
	case entity.IsMissing(req.TuitionFee) || req.TuitionFee < b.TuitionMin || req.TuitionFee > b.TuitionMax:
		return violation{
			rule:    RuleTuitionFee,
			code:    errcodes.InvalidTuitionFee,
			message: fmt.Sprintf("❌ Please enter a valid monthly tuition fee (%s to %s).", num(b.TuitionMin), num(b.TuitionMax)),
		}, false
	case !req.MotherEdu.Valid():
		return violation{
			rule:    RuleMotherEdu,
			code:    errcodes.InvalidEducation,
			message: "❌ Mother's education level must be between 0 and 4.",
		}, false
	case !req.FatherEdu.Valid():
		return violation{
			rule:    RuleFatherEdu,
			code:    errcodes.InvalidEducation,
			message: "❌ Father's education level must be between 0 and 4.",
		}, false
	case !req.TimeFriends.Valid():
		return violation{
			rule:    RuleTimeFriends,
			code:    errcodes.InvalidTimeFriends,
			message: "❌ Time spent with friends must be between 1 and 5.",
		}, false
	}

	if field, ok := invalidCategory(req); ok {
		return violation{
			rule:    RuleCategory,
			code:    errcodes.InvalidCategory,
			message: fmt.Sprintf("❌ Please choose a valid value for %s.", field),
		}, false
	}

	return violation{}, true
}

func invalidCategory(req entity.PredictionRequest) (string, bool) {
	checks := []struct {
		field string
		valid bool
	}{
		{entity.FeatureGender, req.Gender.Valid()},
		{entity.FeatureAddress, req.Address.Valid()},
		{entity.FeatureFamilySize, req.FamilySize.Valid()},
		{entity.FeatureParentStatus, req.ParentStatus.Valid()},
		{entity.FeatureMotherJob, req.MotherJob.Valid()},
		{entity.FeatureFatherJob, req.FatherJob.Valid()},
		{entity.FeatureRelationship, req.Relationship.Valid()},
		{entity.FeatureSmoker, req.Smoker.Valid()},
	}

	for _, c := range checks {
		if !c.valid {
			return c.field, true
		}
	}

	return "", false
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
