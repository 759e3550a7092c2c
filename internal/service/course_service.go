package service

import (
	"course_track_backend/internal/model"
	"course_track_backend/internal/repository"
	"course_track_backend/internal/util"
	"course_track_backend/pkg/logger"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PlayNext 的返回状态
const (
	PlayStatusSuccess      = "success"
	PlayStatusFinished     = "finished"
	PlayStatusQuotaReached = "quota_reached"
	PlayStatusError        = "error"
)

// CourseService 课程的增删改查、进度台账与播放分发
// 所有操作串行执行，读-改-存对任何调用方都是原子的；
// 读取类操作先触发每日结算，再叠加派生字段返回
type CourseService struct {
	mu       sync.Mutex
	repo     *repository.CourseRepository
	schedule *ScheduleService
	media    *MediaService
	launcher Launcher
}

func NewCourseService(repo *repository.CourseRepository, schedule *ScheduleService, media *MediaService, launcher Launcher) *CourseService {
	return &CourseService{repo: repo, schedule: schedule, media: media, launcher: launcher}
}

// List 结算后返回全量课程的投影列表
func (s *CourseService) List(today time.Time) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(today)
}

func (s *CourseService) listLocked(today time.Time) ([]model.ProjectedCourse, error) {
	if err := s.schedule.Reconcile(today); err != nil {
		return nil, err
	}

	projected := make([]model.ProjectedCourse, 0, len(s.repo.All()))
	for _, c := range s.repo.All() {
		projected = append(projected, s.project(c))
	}
	return projected, nil
}

// project 派生展示字段，纯计算，不修改记录
func (s *CourseService) project(c *model.Course) model.ProjectedCourse {
	total := len(s.media.ListVideos(c.Folder))

	progress := 0
	if total > 0 {
		progress = min(c.LastIndex, total) * 100 / total
	}

	daily := c.WatchedTodayCount * 100 / c.DailyQuota
	if daily > 100 {
		daily = 100
	}

	return model.ProjectedCourse{
		Course:       *c,
		Progress:     progress,
		TotalVideos:  total,
		DailyPercent: daily,
		QuotaDisplay: fmt.Sprintf("%d / %d", c.WatchedTodayCount, c.DailyQuota),
		IsQuotaMet:   c.WatchedTodayCount >= c.DailyQuota,
		StrikesCount: len(c.Strikes),
	}
}

// Add 新建课程并立即持久化
func (s *CourseService) Add(today time.Time, name, platform, folder string, quota int, logo string) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quota <= 0 {
		return nil, util.ErrInvalidQuota
	}

	s.repo.Add(model.NewCourse(name, platform, folder, quota, logo, today))
	if err := s.repo.Save(); err != nil {
		return nil, err
	}
	return s.listLocked(today)
}

// Update 按 ID 更新课程设置，未找到时是无操作
func (s *CourseService) Update(today time.Time, id, name, platform, folder string, quota int, logo string) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quota <= 0 {
		return nil, util.ErrInvalidQuota
	}

	if c := s.repo.FindByID(id); c != nil {
		c.Name = name
		c.Platform = platform
		c.Folder = folder
		c.DailyQuota = quota
		c.Logo = logo
	}

	if err := s.repo.Save(); err != nil {
		return nil, err
	}
	return s.listLocked(today)
}

// Delete 按 ID 删除课程
func (s *CourseService) Delete(today time.Time, id string) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repo.Remove(id)
	if err := s.repo.Save(); err != nil {
		return nil, err
	}
	return s.listLocked(today)
}

// ToggleStatus 在 active/paused 之间切换
// 恢复为 active 时把滚动日期重置为今天，暂停期间不会被追溯成惩罚
func (s *CourseService) ToggleStatus(today time.Time, id string) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.repo.FindByID(id); c != nil {
		if c.Status == model.StatusActive {
			c.Status = model.StatusPaused
		} else {
			c.Status = model.StatusActive
			c.LastUpdateDate = dateOnly(today).Format(model.DateLayout)
		}
	}

	if err := s.repo.Save(); err != nil {
		return nil, err
	}
	return s.listLocked(today)
}

// PlayNext 播放游标处的下一个视频
// 配额已满返回 quota_reached；没有剩余文件返回 finished；课程不存在返回 error
func (s *CourseService) PlayNext(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.repo.FindByID(id)
	if c == nil {
		return PlayStatusError
	}
	if c.WatchedTodayCount >= c.DailyQuota {
		return PlayStatusQuotaReached
	}

	files := s.media.ListVideos(c.Folder)
	if c.LastIndex >= len(files) {
		return PlayStatusFinished
	}

	path := filepath.Join(c.Folder, filepath.FromSlash(files[c.LastIndex]))
	if err := s.launcher.Open(path); err != nil {
		// 启动失败不改变课程的日程状态，只记录
		logger.Log.Warn("Failed to launch video", zap.String("path", path), zap.Error(err))
	}
	return PlayStatusSuccess
}

// MarkProgress 确认看完一个视频：游标与当日计数各加一并持久化
// 这是唯一为"真正观看"推进游标的路径；配额已满时是无操作
func (s *CourseService) MarkProgress(today time.Time, id string) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.repo.FindByID(id)
	if c == nil || c.WatchedTodayCount >= c.DailyQuota {
		return s.listLocked(today)
	}

	c.LastIndex++
	c.WatchedTodayCount++
	if err := s.repo.Save(); err != nil {
		return nil, err
	}
	return s.listLocked(today)
}

// PlayMissed 播放惩罚记录里的某个视频，文件不存在或课程不存在返回 false
func (s *CourseService) PlayMissed(id, filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.repo.FindByID(id)
	if c == nil {
		return false
	}

	path := filepath.Join(c.Folder, filepath.FromSlash(filename))
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := s.launcher.Open(path); err != nil {
		logger.Log.Warn("Failed to launch video", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// Redeem 从指定惩罚记录中移除一个已补看的视频
// 清空视频列表的惩罚记录随之删除；游标不回退——错过的视频无论是否补看都算已消耗
func (s *CourseService) Redeem(today time.Time, id, strikeID, filename string) ([]model.ProjectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.repo.FindByID(id)
	if c == nil {
		return s.listLocked(today)
	}

	idx := c.FindStrike(strikeID)
	if idx < 0 {
		return s.listLocked(today)
	}

	strike := &c.Strikes[idx]
	removed := false
	for i, v := range strike.Videos {
		if v == filename {
			strike.Videos = append(strike.Videos[:i], strike.Videos[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return s.listLocked(today)
	}

	if len(strike.Videos) == 0 {
		c.Strikes = append(c.Strikes[:idx], c.Strikes[idx+1:]...)
	}

	if err := s.repo.Save(); err != nil {
		return nil, err
	}
	return s.listLocked(today)
}

// Videos 返回课程目录的有序视频列表，probe 开启时附带 ffprobe 时长
func (s *CourseService) Videos(id string, probe bool) ([]VideoEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.repo.FindByID(id)
	if c == nil {
		return nil, util.ErrCourseNotFound
	}
	return s.media.ListEntries(c.Folder, c.LastIndex, probe), nil
}

// LogoDataURI 把课程 logo 编码为 data URI，logo 缺失或不可读时降级为空串
func (s *CourseService) LogoDataURI(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.repo.FindByID(id)
	if c == nil {
		return "", util.ErrCourseNotFound
	}
	if c.Logo == "" {
		return "", nil
	}

	uri, err := util.EncodeImageDataURI(c.Logo)
	if err != nil {
		logger.Log.Warn("Failed to encode course logo", zap.String("logo", c.Logo), zap.Error(err))
		return "", nil
	}
	return uri, nil
}
