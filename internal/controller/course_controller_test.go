package controller

import (
	"bytes"
	"course_track_backend/internal/model"
	"course_track_backend/internal/repository"
	"course_track_backend/internal/service"
	"course_track_backend/internal/util"
	"course_track_backend/pkg/logger"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test", os.TempDir())
	os.Exit(m.Run())
}

type nopLauncher struct{}

func (nopLauncher) Open(string) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *repository.CourseRepository) {
	t.Helper()

	dataDir := t.TempDir()
	repo := repository.NewCourseRepository(dataDir)
	repo.Load(time.Now())
	media := service.NewMediaService([]string{"mp4"})
	courseSvc := service.NewCourseService(repo, service.NewScheduleService(repo, media), media, nopLauncher{})

	courseCtl := NewCourseController(courseSvc)
	settingsCtl := NewSettingsController(repository.NewSettingsRepository(dataDir))

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/courses", courseCtl.ListCourses)
		api.POST("/courses", courseCtl.AddCourse)
		api.PUT("/courses/:id", courseCtl.UpdateCourse)
		api.DELETE("/courses/:id", courseCtl.DeleteCourse)
		api.POST("/courses/:id/toggle", courseCtl.ToggleStatus)
		api.POST("/courses/:id/play", courseCtl.PlayNext)
		api.POST("/courses/:id/progress", courseCtl.MarkProgress)
		api.POST("/courses/:id/play-missed", courseCtl.PlayMissed)
		api.POST("/courses/:id/strikes/:strikeId/redeem", courseCtl.RedeemStrike)
		api.GET("/courses/:id/videos", courseCtl.ListVideos)
		api.GET("/courses/:id/logo", courseCtl.Logo)
		api.GET("/settings/theme", settingsCtl.GetTheme)
		api.PUT("/settings/theme", settingsCtl.PutTheme)
	}
	return r, repo
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) util.Response {
	t.Helper()
	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestListCoursesEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/courses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != http.StatusOK || resp.Message != "success" {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestAddCourse(t *testing.T) {
	r, repo := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/courses", gin.H{
		"name": "Go 进阶", "platform": "YouTube", "folder": t.TempDir(), "daily_quota": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if len(repo.All()) != 1 {
		t.Fatalf("repo has %d courses, want 1", len(repo.All()))
	}
	if c := repo.All()[0]; c.Name != "Go 进阶" || c.DailyQuota != 2 {
		t.Errorf("persisted course = %+v", c)
	}
}

func TestAddCourseValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	// 缺 name
	w := doRequest(t, r, http.MethodPost, "/api/courses", gin.H{"daily_quota": 2})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name: status = %d, want 400", w.Code)
	}

	// 配额为 0 被绑定校验拦下
	w = doRequest(t, r, http.MethodPost, "/api/courses", gin.H{"name": "X", "daily_quota": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero quota: status = %d, want 400", w.Code)
	}
}

func TestPlayNextUnknownCourse(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/courses/missing/play", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["status"] != service.PlayStatusError {
		t.Errorf("data = %v, want status=error", resp.Data)
	}
}

func TestDeleteCourse(t *testing.T) {
	r, repo := newTestRouter(t)
	c := model.NewCourse("Go", "", "", 3, "", time.Now())
	repo.Add(c)

	w := doRequest(t, r, http.MethodDelete, "/api/courses/"+c.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(repo.All()) != 0 {
		t.Errorf("course not deleted")
	}
}

func TestVideosUnknownCourseIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/courses/missing/videos", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/settings/theme", gin.H{"theme": "dark"})
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/api/settings/theme", nil)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["theme"] != "dark" {
		t.Errorf("data = %v, want theme=dark", resp.Data)
	}
}
