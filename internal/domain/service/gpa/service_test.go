package gpa_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hsc_predictor/internal/domain"
	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/domain/value"
	"hsc_predictor/pkg/errcodes"
	"hsc_predictor/pkg/tests"
)

const (
	ageMessage     = "❌ Please enter a valid age (15 to 30)."
	sscMessage     = "❌ Please enter a valid SSC result (2.50 to 5.00)."
	tuitionMessage = "❌ Please enter a valid monthly tuition fee (0 to 134168)."
)

type stubModel struct {
	calls   atomic.Int32
	records []entity.FeatureRecord
	mu      sync.Mutex
	predict func(entity.FeatureRecord) (float64, error)
}

func returning(v float64) *stubModel {
	return &stubModel{predict: func(entity.FeatureRecord) (float64, error) { return v, nil }}
}

func (m *stubModel) Predict(_ context.Context, record entity.FeatureRecord) (float64, error) {
	m.calls.Add(1)

	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()

	return m.predict(record)
}

type recordingObserver struct {
	outcomes []string
	clamped  []bool
}

func (o *recordingObserver) ObservePrediction(outcome string, clamped bool, _ time.Duration) {
	o.outcomes = append(o.outcomes, outcome)
	o.clamped = append(o.clamped, clamped)
}

func validRequest() entity.PredictionRequest {
	return entity.PredictionRequest{
		Gender:       value.GenderMale,
		Age:          17,
		Address:      value.AddressUrban,
		FamilySize:   value.FamilySizeGT3,
		ParentStatus: value.ParentStatusTogether,
		MotherEdu:    3,
		FatherEdu:    3,
		MotherJob:    value.MotherJobServices,
		FatherJob:    value.FatherJobTeacher,
		Relationship: value.No,
		Smoker:       value.No,
		TuitionFee:   5000,
		TimeFriends:  3,
		SSCResult:    4.50,
	}
}

func TestPredictGPAScenarios(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		modify    func(*entity.PredictionRequest)
		want      string
		wantCalls int32
	}{
		{
			name:      "Valid record",
			modify:    func(*entity.PredictionRequest) {},
			want:      "🎓 Predicted HSC GPA: 3.90",
			wantCalls: 1,
		},
		{
			name:   "Age below range",
			modify: func(r *entity.PredictionRequest) { r.Age = 10 },
			want:   ageMessage,
		},
		{
			name:   "Tuition fee above range",
			modify: func(r *entity.PredictionRequest) { r.TuitionFee = 200000 },
			want:   tuitionMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			model := returning(3.9)
			svc := gpa.NewService(model, gpa.DefaultBounds())

			req := validRequest()
			tc.modify(&req)

			rq.Equal(tc.want, svc.PredictGPA(context.Background(), req))
			rq.Equal(tc.wantCalls, model.calls.Load())
		})
	}
}

func TestPredictPassesFeatureRecord(t *testing.T) {
	rq := require.New(t)

	model := returning(3.9)
	svc := gpa.NewService(model, gpa.DefaultBounds())

	req := validRequest()
	svc.Predict(context.Background(), req)

	rq.Len(model.records, 1)
	rq.Equal(req.Features(), model.records[0])
}

func TestPredictRejectsOutOfRange(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		modify func(*entity.PredictionRequest)
		rule   gpa.Rule
		code   string
		want   string
	}{
		{"Age missing", func(r *entity.PredictionRequest) { r.Age = entity.Missing() }, gpa.RuleAge, "InvalidAge", ageMessage},
		{"Age zero", func(r *entity.PredictionRequest) { r.Age = 0 }, gpa.RuleAge, "InvalidAge", ageMessage},
		{"Age negative", func(r *entity.PredictionRequest) { r.Age = -17 }, gpa.RuleAge, "InvalidAge", ageMessage},
		{"Age just below min", func(r *entity.PredictionRequest) { r.Age = 14.99 }, gpa.RuleAge, "InvalidAge", ageMessage},
		{"Age equal to max", func(r *entity.PredictionRequest) { r.Age = 30 }, gpa.RuleAge, "InvalidAge", ageMessage},
		{"Age infinite", func(r *entity.PredictionRequest) { r.Age = math.Inf(1) }, gpa.RuleAge, "InvalidAge", ageMessage},
		{"SSC missing", func(r *entity.PredictionRequest) { r.SSCResult = entity.Missing() }, gpa.RuleSSCResult, "InvalidSSCResult", sscMessage},
		{"SSC zero", func(r *entity.PredictionRequest) { r.SSCResult = 0 }, gpa.RuleSSCResult, "InvalidSSCResult", sscMessage},
		{"SSC just below min", func(r *entity.PredictionRequest) { r.SSCResult = 2.49 }, gpa.RuleSSCResult, "InvalidSSCResult", sscMessage},
		{"SSC above max", func(r *entity.PredictionRequest) { r.SSCResult = 5.01 }, gpa.RuleSSCResult, "InvalidSSCResult", sscMessage},
		{"Tuition missing", func(r *entity.PredictionRequest) { r.TuitionFee = entity.Missing() }, gpa.RuleTuitionFee, "InvalidTuitionFee", tuitionMessage},
		{"Tuition negative", func(r *entity.PredictionRequest) { r.TuitionFee = -1 }, gpa.RuleTuitionFee, "InvalidTuitionFee", tuitionMessage},
		{"Tuition above max", func(r *entity.PredictionRequest) { r.TuitionFee = 134168.01 }, gpa.RuleTuitionFee, "InvalidTuitionFee", tuitionMessage},
		{
			"Mother education out of scale", func(r *entity.PredictionRequest) { r.MotherEdu = 5 },
			gpa.RuleMotherEdu, "InvalidEducation", "❌ Mother's education level must be between 0 and 4.",
		},
		{
			"Father education negative", func(r *entity.PredictionRequest) { r.FatherEdu = -1 },
			gpa.RuleFatherEdu, "InvalidEducation", "❌ Father's education level must be between 0 and 4.",
		},
		{
			"Time with friends zero", func(r *entity.PredictionRequest) { r.TimeFriends = 0 },
			gpa.RuleTimeFriends, "InvalidTimeFriends", "❌ Time spent with friends must be between 1 and 5.",
		},
		{
			"Unknown father job", func(r *entity.PredictionRequest) { r.FatherJob = "At_home" },
			gpa.RuleCategory, "InvalidCategory", "❌ Please choose a valid value for F_Job.",
		},
		{
			"Empty gender", func(r *entity.PredictionRequest) { r.Gender = "" },
			gpa.RuleCategory, "InvalidCategory", "❌ Please choose a valid value for gender.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			model := returning(3.9)
			svc := gpa.NewService(model, gpa.DefaultBounds())

			req := validRequest()
			tc.modify(&req)

			result := svc.Predict(context.Background(), req)

			rq.Equal(gpa.OutcomeInvalid, result.Outcome)
			rq.Equal(tc.rule, result.Rule)
			rq.Equal(tc.want, result.Message())
			rq.False(result.OK())
			rq.Zero(model.calls.Load())

			code, ok := domain.GetCode(result.Err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
		})
	}
}

func TestPredictAcceptsBoundaries(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		modify func(*entity.PredictionRequest)
	}{
		{"Age at min", func(r *entity.PredictionRequest) { r.Age = 15 }},
		{"Age just below max", func(r *entity.PredictionRequest) { r.Age = 29.99 }},
		{"SSC at min", func(r *entity.PredictionRequest) { r.SSCResult = 2.50 }},
		{"SSC at max", func(r *entity.PredictionRequest) { r.SSCResult = 5.00 }},
		{"Tuition zero", func(r *entity.PredictionRequest) { r.TuitionFee = 0 }},
		{"Tuition at max", func(r *entity.PredictionRequest) { r.TuitionFee = 134168 }},
		{"Education extremes", func(r *entity.PredictionRequest) { r.MotherEdu, r.FatherEdu = 0, 4 }},
		{"Time with friends extremes", func(r *entity.PredictionRequest) { r.TimeFriends = 5 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			model := returning(3.1)
			svc := gpa.NewService(model, gpa.DefaultBounds())

			req := validRequest()
			tc.modify(&req)

			result := svc.Predict(context.Background(), req)

			rq.Equal(gpa.OutcomeSuccess, result.Outcome, result.Message())
			rq.Equal(int32(1), model.calls.Load())
		})
	}
}

func TestPredictValidationShortCircuits(t *testing.T) {
	rq := require.New(t)

	svc := gpa.NewService(returning(3.9), gpa.DefaultBounds())

	req := validRequest()
	req.Age = 10
	req.SSCResult = 1
	req.TuitionFee = -5

	rq.Equal(ageMessage, svc.PredictGPA(context.Background(), req))

	req.Age = 17
	rq.Equal(sscMessage, svc.PredictGPA(context.Background(), req))

	req.SSCResult = 4
	rq.Equal(tuitionMessage, svc.PredictGPA(context.Background(), req))
}

func TestPredictClampsModelOutput(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		raw         float64
		wantGPA     float64
		wantClamped bool
		want        string
	}{
		{"Below scale", -3, 0, true, "🎓 Predicted HSC GPA: 0.00"},
		{"Above scale", 9, 5, true, "🎓 Predicted HSC GPA: 5.00"},
		{"Positive infinity", math.Inf(1), 5, true, "🎓 Predicted HSC GPA: 5.00"},
		{"Lower edge", 0, 0, false, "🎓 Predicted HSC GPA: 0.00"},
		{"Upper edge", 5, 5, false, "🎓 Predicted HSC GPA: 5.00"},
		{"Two decimals", 3.456, 3.456, false, "🎓 Predicted HSC GPA: 3.46"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			svc := gpa.NewService(returning(tc.raw), gpa.DefaultBounds())

			result := svc.Predict(context.Background(), validRequest())

			rq.Equal(gpa.OutcomeSuccess, result.Outcome)
			rq.Equal(tc.wantGPA, result.GPA)
			rq.Equal(tc.wantClamped, result.Clamped)
			rq.Equal(tc.want, result.Message())
			rq.NoError(result.Err)
		})
	}
}

func TestPredictModelFailures(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		predict  func(entity.FeatureRecord) (float64, error)
		wantCode string
		contains string
	}{
		{
			name: "Model error",
			predict: func(entity.FeatureRecord) (float64, error) {
				return 0, domain.WrapError(errors.New("column F_Job"), errcodes.ModelSchemaMismatch, "schema mismatch")
			},
			wantCode: "ModelSchemaMismatch",
			contains: "schema mismatch: column F_Job",
		},
		{
			name: "Model panic",
			predict: func(entity.FeatureRecord) (float64, error) {
				panic("index out of range")
			},
			wantCode: "ModelPanicked",
			contains: "model panicked: index out of range",
		},
		{
			name: "Model returns NaN",
			predict: func(entity.FeatureRecord) (float64, error) {
				return math.NaN(), nil
			},
			wantCode: "ModelBadResponse",
			contains: "model returned NaN",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			svc := gpa.NewService(&stubModel{predict: tc.predict}, gpa.DefaultBounds())

			var result gpa.Result

			rq.NotPanics(func() {
				result = svc.Predict(context.Background(), validRequest())
			})

			rq.Equal(gpa.OutcomeFailed, result.Outcome)
			rq.Contains(result.Message(), "❌ Prediction failed: ")
			rq.Contains(result.Message(), tc.contains)

			code, ok := domain.GetCode(result.Err)
			rq.True(ok)
			rq.Equal(tc.wantCode, string(code))
		})
	}
}

func TestPredictIsIdempotent(t *testing.T) {
	rq := require.New(t)

	svc := gpa.NewService(returning(3.27), gpa.DefaultBounds())

	first := svc.PredictGPA(context.Background(), validRequest())
	second := svc.PredictGPA(context.Background(), validRequest())

	rq.Equal(first, second)
	rq.Equal("🎓 Predicted HSC GPA: 3.27", first)
}

func TestPredictAlwaysWithinScale(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()
	bounds := gpa.DefaultBounds()

	for range 500 {
		raw := random.Between(-10, 10)
		svc := gpa.NewService(returning(raw), bounds)

		req := entity.PredictionRequest{
			Gender:       tests.Pick(random, value.Genders...),
			Age:          random.Between(bounds.AgeMin, bounds.AgeMax),
			Address:      tests.Pick(random, value.Addresses...),
			FamilySize:   tests.Pick(random, value.FamilySizes...),
			ParentStatus: tests.Pick(random, value.ParentStatuses...),
			MotherEdu:    value.EducationLevel(random.Intn(5)),
			FatherEdu:    value.EducationLevel(random.Intn(5)),
			MotherJob:    tests.Pick(random, value.MotherJobs...),
			FatherJob:    tests.Pick(random, value.FatherJobs...),
			Relationship: tests.Pick(random, value.YesNos...),
			Smoker:       tests.Pick(random, value.YesNos...),
			TuitionFee:   random.Between(bounds.TuitionMin, bounds.TuitionMax),
			TimeFriends:  value.FriendsTime(1 + random.Intn(5)),
			SSCResult:    random.Between(bounds.SSCMin, bounds.SSCMax),
		}

		result := svc.Predict(context.Background(), req)

		rq.Equal(gpa.OutcomeSuccess, result.Outcome, result.Message())
		rq.GreaterOrEqual(result.GPA, gpa.MinGPA)
		rq.LessOrEqual(result.GPA, gpa.MaxGPA)
		rq.Equal(raw < gpa.MinGPA || raw > gpa.MaxGPA, result.Clamped)
	}
}

func TestPredictConcurrentCalls(t *testing.T) {
	rq := require.New(t)

	model := &stubModel{predict: func(record entity.FeatureRecord) (float64, error) {
		return record[entity.FeatureSSCResult].(float64) - 0.5, nil
	}}
	svc := gpa.NewService(model, gpa.DefaultBounds())

	var wg sync.WaitGroup

	results := make([]string, 50)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := validRequest()
			req.SSCResult = 3 + float64(i%2)
			results[i] = svc.PredictGPA(context.Background(), req)
		}()
	}

	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			rq.Equal("🎓 Predicted HSC GPA: 2.50", got)
		} else {
			rq.Equal("🎓 Predicted HSC GPA: 3.50", got)
		}
	}

	rq.Equal(int32(len(results)), model.calls.Load())
}

func TestPredictUsesConfiguredBounds(t *testing.T) {
	rq := require.New(t)

	bounds := gpa.Bounds{AgeMin: 0, AgeMax: 100, SSCMin: 0.5, SSCMax: 5, TuitionMin: 0, TuitionMax: 250000}
	svc := gpa.NewService(returning(2), bounds)

	req := validRequest()
	req.Age = 10
	req.TuitionFee = 200000

	rq.Equal("🎓 Predicted HSC GPA: 2.00", svc.PredictGPA(context.Background(), req))

	req.Age = 100
	rq.Equal("❌ Please enter a valid age (0 to 100).", svc.PredictGPA(context.Background(), req))

	req.Age = 20
	req.SSCResult = 0.25
	rq.Equal("❌ Please enter a valid SSC result (0.50 to 5.00).", svc.PredictGPA(context.Background(), req))

	rq.Equal(bounds, svc.Bounds())
}

func TestPredictReportsToObserver(t *testing.T) {
	rq := require.New(t)

	observer := &recordingObserver{}
	svc := gpa.NewService(returning(7), gpa.DefaultBounds()).WithObserver(observer)

	svc.Predict(context.Background(), validRequest())

	req := validRequest()
	req.Age = 1
	svc.Predict(context.Background(), req)

	failing := gpa.NewService(&stubModel{predict: func(entity.FeatureRecord) (float64, error) {
		return 0, errors.New("boom")
	}}, gpa.DefaultBounds()).WithObserver(observer)
	failing.Predict(context.Background(), validRequest())

	rq.Equal([]string{"success", "invalid", "failed"}, observer.outcomes)
	rq.Equal([]bool{true, false, false}, observer.clamped)
}
