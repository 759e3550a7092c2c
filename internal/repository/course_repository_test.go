package repository

import (
	"course_track_backend/internal/model"
	"course_track_backend/pkg/logger"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	logger.InitLogger("test", os.TempDir())
	os.Exit(m.Run())
}

var testDay = time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

func TestLoadMissingDocument(t *testing.T) {
	repo := NewCourseRepository(t.TempDir())
	repo.Load(testDay)
	if got := repo.All(); len(got) != 0 {
		t.Errorf("missing document: %d courses, want 0", len(got))
	}
}

func TestLoadCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, CourseFile), []byte("{{{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	repo := NewCourseRepository(dir)
	repo.Load(testDay)
	if got := repo.All(); len(got) != 0 {
		t.Errorf("corrupt document: %d courses, want 0", len(got))
	}
}

// 旧版文档：缺失字段落默认值，整数惩罚计数迁移为结构化记录
func TestLoadNormalizesLegacyDocument(t *testing.T) {
	dir := t.TempDir()
	doc := `[
        {"id": "c1", "name": "Go", "folder": "/tmp/go", "daily_quota": 0, "strikes": 2},
        null
    ]`
	if err := os.WriteFile(filepath.Join(dir, CourseFile), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	repo := NewCourseRepository(dir)
	repo.Load(testDay)

	courses := repo.All()
	if len(courses) != 1 {
		t.Fatalf("courses = %d, want 1 (null entries dropped)", len(courses))
	}

	c := courses[0]
	if c.DailyQuota != model.DefaultDailyQuota {
		t.Errorf("daily_quota = %d, want default %d", c.DailyQuota, model.DefaultDailyQuota)
	}
	if c.Status != model.StatusActive {
		t.Errorf("status = %q, want active", c.Status)
	}
	if c.LastUpdateDate != "2026-03-01" {
		t.Errorf("last_update_date = %q, want 2026-03-01", c.LastUpdateDate)
	}
	if len(c.Strikes) != 2 {
		t.Fatalf("strikes = %d, want 2 migrated from legacy counter", len(c.Strikes))
	}
	if c.Strikes[0].Date != model.LegacyStrikeDate {
		t.Errorf("migrated strike date = %q, want %q", c.Strikes[0].Date, model.LegacyStrikeDate)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewCourseRepository(dir)
	repo.Load(testDay)

	c := model.NewCourse("Go", "YouTube", "/tmp/go", 3, "", testDay)
	c.Strikes = append(c.Strikes, model.NewStrike("2026-02-27", []string{"v1.mp4"}))
	repo.Add(c)
	if err := repo.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewCourseRepository(dir)
	reloaded.Load(testDay)

	got := reloaded.FindByID(c.ID)
	if got == nil {
		t.Fatal("course lost in round trip")
	}
	if got.Name != "Go" || got.Platform != "YouTube" || got.DailyQuota != 3 {
		t.Errorf("round trip mangled fields: %+v", got)
	}
	if len(got.Strikes) != 1 || got.Strikes[0].Videos[0] != "v1.mp4" {
		t.Errorf("round trip mangled strikes: %+v", got.Strikes)
	}
}

func TestRemove(t *testing.T) {
	repo := NewCourseRepository(t.TempDir())
	repo.Load(testDay)
	repo.Add(model.NewCourse("A", "", "", 3, "", testDay))
	b := model.NewCourse("B", "", "", 3, "", testDay)
	repo.Add(b)

	if !repo.Remove(b.ID) {
		t.Error("Remove(existing) = false, want true")
	}
	if repo.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
	if len(repo.All()) != 1 || repo.All()[0].Name != "A" {
		t.Errorf("after remove: %+v", repo.All())
	}
}

func TestSettingsRepository(t *testing.T) {
	dir := t.TempDir()
	repo := NewSettingsRepository(dir)

	// 缺失文件返回默认主题
	if s := repo.Load(); s.Theme != model.ThemeLight {
		t.Errorf("default theme = %q, want light", s.Theme)
	}

	if err := repo.Save(model.Settings{Theme: model.ThemeDark}); err != nil {
		t.Fatal(err)
	}
	if s := repo.Load(); s.Theme != model.ThemeDark {
		t.Errorf("theme after save = %q, want dark", s.Theme)
	}

	// 非法主题归一化为默认值
	if err := repo.Save(model.Settings{Theme: "neon"}); err != nil {
		t.Fatal(err)
	}
	if s := repo.Load(); s.Theme != model.ThemeLight {
		t.Errorf("invalid theme must normalize to light, got %q", s.Theme)
	}
}
