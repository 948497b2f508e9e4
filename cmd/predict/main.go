// Command predict reads one student record as JSON from stdin and prints the
// predicted HSC GPA message.
//
//	echo '{"gender":"M","age":17,...}' | predict -model models/student_rf_pipeline.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/domain/value"
	"hsc_predictor/internal/infrastructure/model"
	"hsc_predictor/pkg/contextx"
	"hsc_predictor/pkg/logx"
)

// An absent ordinal is out of scale and fails its range rule.
const invalidOrdinal = -1

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// record uses the feature names of the model schema as keys.
type record struct {
	Gender       string   `json:"gender"`
	Age          *float64 `json:"age"`
	Address      string   `json:"address"`
	FamilySize   string   `json:"famsize"`
	ParentStatus string   `json:"Pstatus"`
	MotherEdu    *int     `json:"M_Edu"`
	FatherEdu    *int     `json:"F_Edu"`
	MotherJob    string   `json:"M_Job"`
	FatherJob    string   `json:"F_Job"`
	Relationship string   `json:"relationship"`
	Smoker       string   `json:"smoker"`
	TuitionFee   *float64 `json:"tuition_fee"`
	TimeFriends  *int     `json:"time_friends"`
	SSCResult    *float64 `json:"ssc_result"`
}

func main() {
	modelPath := flag.String("model", "models/student_rf_pipeline.json", "path to the model artifact")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}

	ctx := contextx.WithLogger(context.Background(), logx.NewLogger(os.Stderr, level, true))

	msg, err := run(ctx, os.Stdin, *modelPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(msg)
}

func run(ctx context.Context, in io.Reader, modelPath string) (string, error) {
	var r record

	if err := json.NewDecoder(in).Decode(&r); err != nil {
		return "", fmt.Errorf("json.Decode: %w", err)
	}

	pipeline, err := model.Load(ctx, modelPath)
	if err != nil {
		return "", fmt.Errorf("model.Load: %w", err)
	}

	return gpa.NewService(pipeline, gpa.DefaultBounds()).PredictGPA(ctx, r.request()), nil
}

func (r record) request() entity.PredictionRequest {
	return entity.PredictionRequest{
		Gender:       value.Gender(r.Gender),
		Age:          orMissing(r.Age),
		Address:      value.Address(r.Address),
		FamilySize:   value.FamilySize(r.FamilySize),
		ParentStatus: value.ParentStatus(r.ParentStatus),
		MotherEdu:    value.EducationLevel(lo.FromPtrOr(r.MotherEdu, invalidOrdinal)),
		FatherEdu:    value.EducationLevel(lo.FromPtrOr(r.FatherEdu, invalidOrdinal)),
		MotherJob:    value.MotherJob(r.MotherJob),
		FatherJob:    value.FatherJob(r.FatherJob),
		Relationship: value.YesNo(r.Relationship),
		Smoker:       value.YesNo(r.Smoker),
		TuitionFee:   orMissing(r.TuitionFee),
		TimeFriends:  value.FriendsTime(lo.FromPtrOr(r.TimeFriends, invalidOrdinal)),
		SSCResult:    orMissing(r.SSCResult),
	}
}

func orMissing(v *float64) float64 {
	return lo.FromPtrOr(v, entity.Missing())
}
