package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	intconfig "airport-backend/internal/config"
)

func asPassenger(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("passenger_id", id)
		c.Next()
	}
}

func TestGetNavigationsWithoutIdentity(t *testing.T) {
	r := newTestRouter()
	r.GET("/api/navigations", GetNavigations)

	req := httptest.NewRequest(http.MethodGet, "/api/navigations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCreateNavigationInvalidBody(t *testing.T) {
	r := newTestRouter()
	r.POST("/api/navigations", asPassenger(7), CreateNavigation)

	req := httptest.NewRequest(http.MethodPost, "/api/navigations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestVoiceQueryUnknownType(t *testing.T) {
	r := newTestRouter()
	r.POST("/api/navigations/voice-query", asPassenger(7), VoiceQuery)

	body := `{"currentLocationId":1,"destinationId":2,"queryType":"weather"}`
	req := httptest.NewRequest(http.MethodPost, "/api/navigations/voice-query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestVoiceQueryMissingSessionParams(t *testing.T) {
	r := newTestRouter()
	r.POST("/api/navigations/voice-query", asPassenger(7), VoiceQuery)

	body := `{"currentLocationId":1,"queryType":"direction"}`
	req := httptest.NewRequest(http.MethodPost, "/api/navigations/voice-query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestCompleteNavigationConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	now := time.Now()
	mock.ExpectExec("UPDATE navigation_records").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM navigation_records WHERE id=\\? AND passenger_id=\\?").
		WithArgs(int64(11), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "passenger_id", "start_location_id", "end_location_id",
			"distance", "estimated_time", "completed", "completed_at", "created_at",
		}).AddRow(11, 7, 1, 2, 141, 2, true, now, now.Add(-time.Hour)))

	r := newTestRouter()
	r.POST("/api/navigations/:id/complete", asPassenger(7), CompleteNavigation)

	req := httptest.NewRequest(http.MethodPost, "/api/navigations/11/complete", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body: %s", w.Code, w.Body.String())
	}
}
