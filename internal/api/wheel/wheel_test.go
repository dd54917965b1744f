package wheel

import (
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	wheelGeom "brand_site/pkg/wheel"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var dopamine = model.Prize{ID: 1, Name: "Dopamine", Category: "Hormone", AssociatedArea: "Reward", Note: "n"}

type wheelStub struct {
	spinErr  error
	lastSpin model.WheelSpin
	status   *model.SpinStatus
}

func (s *wheelStub) Wheel(ctx context.Context) (*model.Wheel, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Wheel{Prizes: []model.Prize{dopamine}, Status: *status}, nil
}

func (s *wheelStub) Status(ctx context.Context) (*model.SpinStatus, error) {
	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		return nil, model.ErrUnauthenticated
	}
	if s.status == nil {
		return &model.SpinStatus{}, nil
	}
	return s.status, nil
}

func (s *wheelStub) Spin(ctx context.Context, in model.WheelSpin) (*model.WheelSpinResult, error) {
	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		return nil, model.ErrUnauthenticated
	}
	s.lastSpin = in
	if s.spinErr != nil {
		return nil, s.spinErr
	}
	return &model.WheelSpinResult{Prize: dopamine, TargetRotation: 1935, ExtraTurns: 5}, nil
}

func (s *wheelStub) Stats(context.Context) ([]model.PrizeStat, error) {
	return []model.PrizeStat{{Prize: dopamine, Awarded: 3}}, nil
}

func doRequest(h http.HandlerFunc, method, body string, authed bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, "/wheel", strings.NewReader(body))
	if authed {
		r = r.WithContext(middleware.WithUserID(r.Context(), "user-1"))
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSpinSuccess(t *testing.T) {
	serv := &wheelStub{}
	h := NewHandler(HandlerDeps{Serv: serv})

	w := doRequest(h.Spin, http.MethodPost, `{"current_rotation": 15.5, "prize": "Dopamine"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if body["success"] != true || body["target_rotation"] != 1935.0 || body["extra_turns"] != 5.0 {
		t.Errorf("body = %v", body)
	}
	prize := body["prize"].(map[string]any)
	if prize["name"] != "Dopamine" || prize["associated_area"] != "Reward" {
		t.Errorf("prize = %v", prize)
	}
	if serv.lastSpin.CurrentRotation != 15.5 || serv.lastSpin.ProposedPrize != "Dopamine" {
		t.Errorf("service got %+v", serv.lastSpin)
	}
}

func TestSpinUnauthenticated(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &wheelStub{}})

	w := doRequest(h.Spin, http.MethodPost, `{"current_rotation": 0}`, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "unauthenticated" || body["redirect"] != "/login" {
		t.Errorf("body = %v", body)
	}
}

func TestSpinAlreadySpunShowsPrize(t *testing.T) {
	serv := &wheelStub{
		spinErr: model.ErrAlreadySpun,
		status:  &model.SpinStatus{HasSpun: true, Prize: &dopamine},
	}
	h := NewHandler(HandlerDeps{Serv: serv})

	w := doRequest(h.Spin, http.MethodPost, `{"current_rotation": 0}`, true)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "already spun" {
		t.Errorf("error = %v", body["error"])
	}
	prize, ok := body["prize"].(map[string]any)
	if !ok || prize["name"] != "Dopamine" {
		t.Errorf("prize = %v", body["prize"])
	}
}

func TestSpinErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		spinErr error
		want    int
	}{
		{name: "invalid prize", body: `{"prize": "Nope"}`, spinErr: model.ErrInvalidPrize, want: http.StatusBadRequest},
		{name: "malformed json", body: `{"current_rotation":`, want: http.StatusBadRequest},
		{name: "no profile", body: `{}`, spinErr: model.ErrProfileNotFound, want: http.StatusNotFound},
		{name: "rotation out of range", body: `{}`, spinErr: fmt.Errorf("target rotation: %w", wheelGeom.ErrRotationOutOfRange), want: http.StatusBadRequest},
		{name: "database down", body: `{}`, spinErr: errors.New("conn refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(HandlerDeps{Serv: &wheelStub{spinErr: tt.spinErr}})
			w := doRequest(h.Spin, http.MethodPost, tt.body, true)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestSpinRejectsHugeRotation(t *testing.T) {
	serv := &wheelStub{}
	h := NewHandler(HandlerDeps{Serv: serv})

	for _, body := range []string{`{"current_rotation": 1e17}`, `{"current_rotation": 1.7976931348623157e308}`} {
		w := doRequest(h.Spin, http.MethodPost, body, true)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", body, w.Code)
		}
	}
	if serv.lastSpin != (model.WheelSpin{}) {
		t.Errorf("service must not be called, got %+v", serv.lastSpin)
	}

	w := doRequest(h.Spin, http.MethodPost, `{"current_rotation": 1e9}`, true)
	if w.Code != http.StatusOK {
		t.Errorf("rotation at the limit: status = %d", w.Code)
	}
}

func TestWheelAndResult(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &wheelStub{}})

	w := doRequest(h.Wheel, http.MethodGet, "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("wheel status = %d", w.Code)
	}
	body := decode(t, w)
	if prizes := body["prizes"].([]any); len(prizes) != 1 {
		t.Errorf("prizes = %v", prizes)
	}
	status := body["status"].(map[string]any)
	if status["has_spun"] != false || status["prize"] != nil {
		t.Errorf("status = %v", status)
	}

	w = doRequest(h.Result, http.MethodGet, "", false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous result status = %d", w.Code)
	}
}

func TestStats(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &wheelStub{}})

	w := doRequest(h.Stats, http.MethodGet, "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var stats []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0]["awarded"] != 3.0 {
		t.Errorf("stats = %v", stats)
	}
}
