package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"git.appkode.ru/pub/go/failure"

	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/pkg/errcodes"
	"hsc_predictor/pkg/httpx/reply"
	"hsc_predictor/pkg/httpx/req"
	"hsc_predictor/pkg/rest"
)

type gpaService interface {
	Predict(context.Context, entity.PredictionRequest) gpa.Result
	Bounds() gpa.Bounds
}

type PredictionServer struct {
	gpaService gpaService
	form       rest.Form
	page       *template.Template
}

func NewPredictionServer(gpaService gpaService) PredictionServer {
	return PredictionServer{
		gpaService: gpaService,
		form:       newForm(gpaService.Bounds()),
		page:       indexTemplate,
	}
}

func (s PredictionServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	reply.HTML(r.Context(), w, http.StatusOK, s.page, newPage(s.form, url.Values{}, nil))

	return nil
}

func (s PredictionServer) postIndex(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("r.ParseForm: %w", err),
			failure.WithCode(errcodes.InvalidPredictInput),
		)
	}

	result := s.gpaService.Predict(ctx, newDomainRequestFromForm(r.PostForm))

	reply.HTML(ctx, w, http.StatusOK, s.page, newPage(s.form, r.PostForm, &result))

	return nil
}

func (s PredictionServer) postV1Predictions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result := s.gpaService.Predict(ctx, newDomainRequest(request))

	reply.JSON(ctx, w, http.StatusOK, newRESTPredictionResponse(result))

	return nil
}

func (s PredictionServer) getV1Form(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, s.form)

	return nil
}
