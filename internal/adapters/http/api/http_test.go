package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/clicker/internal/adapters/http/api"
	service "github.com/okian/clicker/internal/app"
	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/classification"
	"github.com/okian/clicker/internal/domain/handicap"
	"github.com/okian/clicker/internal/domain/rounds"
)

// engineDeps backs the handlers with a real engine over a fixed score
// model so responses are deterministic.
type engineDeps struct {
	engine *classification.Indoor
}

func newEngineDeps() *engineDeps {
	calc := handicap.Func(func(h float64, r rounds.Round) int {
		score := 650 - int(5*h)
		if score < 0 {
			score = 0
		}
		if score > r.MaxScore() {
			score = r.MaxScore()
		}
		return score
	})
	return &engineDeps{
		engine: classification.NewIndoor(classification.WithCalculator(calc)),
	}
}

func (d *engineDeps) Thresholds(_ context.Context, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (classification.ThresholdTable, error) {
	return d.engine.Thresholds(classification.ByName(round), b, g, a)
}

func (d *engineDeps) Scores(_ context.Context, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) ([]int, error) {
	return d.engine.Scores(classification.ByName(round), b, g, a)
}

func (d *engineDeps) Classify(_ context.Context, score int, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (string, error) {
	return d.engine.Classify(score, classification.ByName(round), b, g, a)
}

func (d *engineDeps) Rounds(_ context.Context) []string {
	return d.engine.EligibleRounds()
}

type statsStub struct{}

func (statsStub) GetStats() service.Stats {
	return service.Stats{Started: true, QueriesServed: 3, EligibleRounds: 12}
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	srv := api.NewServer(newEngineDeps(), statsStub{})
	srv.Register(context.Background(), mux)
	return mux
}

func TestClassificationsEndpoint(t *testing.T) {
	convey.Convey("Given the API routes", t, func() {
		mux := newTestMux()

		convey.Convey("When requesting thresholds for a valid cohort", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications?round=portsmouth&bowstyle=recurve&gender=male&age=adult", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.Convey("Then it returns the eight-tier table", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("X-Request-Id"), convey.ShouldNotBeEmpty)

				var table []struct {
					Tier  string `json:"tier"`
					Score int    `json:"score"`
				}
				convey.So(json.Unmarshal(w.Body.Bytes(), &table), convey.ShouldBeNil)
				convey.So(len(table), convey.ShouldEqual, 8)
				convey.So(table[0].Tier, convey.ShouldEqual, "I-GMB")
			})
		})

		convey.Convey("When the round parameter is missing", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications?bowstyle=recurve&gender=male&age=adult", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("When the bowstyle is not parseable", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications?round=portsmouth&bowstyle=crossbow&gender=male&age=adult", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "unknown bowstyle")
		})

		convey.Convey("When the round is not recognised", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications?round=some_roundname&bowstyle=recurve&gender=male&age=adult", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "not recognised for the purposes of indoor classification")
		})

		convey.Convey("When using POST instead of GET", func() {
			req := httptest.NewRequest(http.MethodPost, "/classifications", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestClassifyEndpoint(t *testing.T) {
	convey.Convey("Given the API routes", t, func() {
		mux := newTestMux()

		convey.Convey("When classifying a valid score", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications/classify?round=portsmouth&bowstyle=recurve&gender=male&age=adult&score=590", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.Convey("Then it returns a tier code", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

				var resp struct {
					Round          string `json:"round"`
					Score          int    `json:"score"`
					Classification string `json:"classification"`
				}
				convey.So(json.Unmarshal(w.Body.Bytes(), &resp), convey.ShouldBeNil)
				convey.So(resp.Round, convey.ShouldEqual, "portsmouth")
				convey.So(resp.Score, convey.ShouldEqual, 590)
				convey.So(resp.Classification, convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When the score is not an integer", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications/classify?round=portsmouth&bowstyle=recurve&gender=male&age=adult&score=abc", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "score must be an integer")
		})

		convey.Convey("When the score is out of range", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/classifications/classify?round=portsmouth&bowstyle=recurve&gender=male&age=adult&score=1000", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "Should be in range 0-600")
		})
	})
}

func TestRoundsAndStatsEndpoints(t *testing.T) {
	convey.Convey("Given the API routes", t, func() {
		mux := newTestMux()

		convey.Convey("When listing rounds", func() {
			req := httptest.NewRequest(http.MethodGet, "/rounds", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.Convey("Then the eligible rounds come back", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

				var resp struct {
					Rounds []string `json:"rounds"`
				}
				convey.So(json.Unmarshal(w.Body.Bytes(), &resp), convey.ShouldBeNil)
				convey.So(resp.Rounds, convey.ShouldContain, "portsmouth")
				convey.So(resp.Rounds, convey.ShouldNotContain, "wa720_70")
			})
		})

		convey.Convey("When requesting stats", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var stats service.Stats
			convey.So(json.Unmarshal(w.Body.Bytes(), &stats), convey.ShouldBeNil)
			convey.So(stats.Started, convey.ShouldBeTrue)
			convey.So(stats.QueriesServed, convey.ShouldEqual, 3)
			convey.So(stats.EligibleRounds, convey.ShouldEqual, 12)
		})

		convey.Convey("When checking health", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
		})
	})
}
