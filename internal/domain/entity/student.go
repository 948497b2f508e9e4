package entity

import (
	"math"

	"hsc_predictor/internal/domain/value"
)

// Feature names the trained pipeline was fitted on. They are part of the
// model's input schema and must not be renamed.
const (
	FeatureGender       = "gender"
	FeatureAge          = "age"
	FeatureAddress      = "address"
	FeatureFamilySize   = "famsize"
	FeatureParentStatus = "Pstatus"
	FeatureMotherEdu    = "M_Edu"
	FeatureFatherEdu    = "F_Edu"
	FeatureMotherJob    = "M_Job"
	FeatureFatherJob    = "F_Job"
	FeatureRelationship = "relationship"
	FeatureSmoker       = "smoker"
	FeatureTuitionFee   = "tuition_fee"
	FeatureTimeFriends  = "time_friends"
	FeatureSSCResult    = "ssc_result"
)

// FeatureNames lists the input schema in the order the form presents it.
//
//nolint:gochecknoglobals
var FeatureNames = []string{
	FeatureGender, FeatureAge, FeatureAddress, FeatureFamilySize, FeatureParentStatus,
	FeatureMotherEdu, FeatureFatherEdu, FeatureMotherJob, FeatureFatherJob,
	FeatureRelationship, FeatureSmoker, FeatureTuitionFee, FeatureTimeFriends, FeatureSSCResult,
}

// PredictionRequest is one student's attributes. Numeric fields use NaN for
// "not supplied".
type PredictionRequest struct {
	Gender       value.Gender
	Age          float64
	Address      value.Address
	FamilySize   value.FamilySize
	ParentStatus value.ParentStatus
	MotherEdu    value.EducationLevel
	FatherEdu    value.EducationLevel
	MotherJob    value.MotherJob
	FatherJob    value.FatherJob
	Relationship value.YesNo
	Smoker       value.YesNo
	TuitionFee   float64
	TimeFriends  value.FriendsTime
	SSCResult    float64
}

// FeatureRecord is the named-column record handed to a model. Categorical
// columns hold strings, numeric columns hold float64.
type FeatureRecord map[string]any

// Features is the only place that knows how a request maps onto the model's
// input schema.
func (r PredictionRequest) Features() FeatureRecord {
	return FeatureRecord{
		FeatureGender:       r.Gender.String(),
		FeatureAge:          r.Age,
		FeatureAddress:      r.Address.String(),
		FeatureFamilySize:   r.FamilySize.String(),
		FeatureParentStatus: r.ParentStatus.String(),
		FeatureMotherEdu:    float64(r.MotherEdu),
		FeatureFatherEdu:    float64(r.FatherEdu),
		FeatureMotherJob:    r.MotherJob.String(),
		FeatureFatherJob:    r.FatherJob.String(),
		FeatureRelationship: r.Relationship.String(),
		FeatureSmoker:       r.Smoker.String(),
		FeatureTuitionFee:   r.TuitionFee,
		FeatureTimeFriends:  float64(r.TimeFriends),
		FeatureSSCResult:    r.SSCResult,
	}
}

// Missing is the sentinel for an absent numeric attribute.
func Missing() float64 {
	return math.NaN()
}

func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
