package service

import (
	"course_track_backend/internal/model"
	"course_track_backend/internal/repository"
	"course_track_backend/pkg/logger"
	"course_track_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// ScheduleService 每日结算引擎
// 在每次读取课程列表前惰性触发：检测自然日翻转，把未完成的配额折算成
// 惩罚记录，推进观看游标，清零当日计数，并删除惩罚过多的课程
// 同一天内重复执行是无操作
type ScheduleService struct {
	repo  *repository.CourseRepository
	media *MediaService
}

func NewScheduleService(repo *repository.CourseRepository, media *MediaService) *ScheduleService {
	return &ScheduleService{repo: repo, media: media}
}

// Reconcile 以 today 为当前日期执行一轮结算，有变更时落盘
func (s *ScheduleService) Reconcile(today time.Time) error {
	today0 := dateOnly(today)
	todayStr := today0.Format(model.DateLayout)

	changed := false
	survivors := make([]*model.Course, 0, len(s.repo.All()))

	for _, c := range s.repo.All() {
		c.Normalize(today0)

		last := dateOnly(c.LastUpdate(today0))
		if !today0.After(last) {
			survivors = append(survivors, c)
			continue
		}

		daysPassed := daysBetween(last, today0)

		if c.Status == model.StatusActive {
			files := s.media.ListVideos(c.Folder)
			total := len(files)

			// 1. 前一天配额未完成：缺口视频记为该日的惩罚
			if c.WatchedTodayCount < c.DailyQuota {
				missed := c.DailyQuota - c.WatchedTodayCount
				start := c.LastIndex + c.WatchedTodayCount
				end := min(start+missed, total)
				if start >= 0 && start < end {
					videos := append([]string(nil), files[start:end]...)
					c.Strikes = append(c.Strikes, model.NewStrike(last.Format(model.DateLayout), videos))
					// 游标按请求的缺口前进，文件不足时也一样（沿用既有行为）
					c.LastIndex += missed
					monitoring.StrikesIssued.Inc()
				}
			}

			// 2. 完全跳过的天数：每天按配额切一段，文件耗尽后不再产生记录
			if daysPassed > 1 {
				for i := 0; i < daysPassed-1; i++ {
					start := c.LastIndex
					end := min(start+c.DailyQuota, total)
					if start < 0 || start >= end {
						continue
					}
					videos := append([]string(nil), files[start:end]...)
					c.Strikes = append(c.Strikes, model.NewStrike(model.SkippedDayDate, videos))
					// 此分支游标按实际切片长度前进，与分支 1 不对称（沿用既有行为）
					c.LastIndex += end - start
					monitoring.StrikesIssued.Inc()
				}
			}

			// 3. 惩罚达到上限的课程直接淘汰，不再参与后续任何处理
			if len(c.Strikes) >= model.MaxStrikes {
				changed = true
				monitoring.CoursesEvicted.Inc()
				logger.Log.Info("Course evicted after reaching strike limit",
					zap.String("id", c.ID), zap.String("name", c.Name),
					zap.Int("strikes", len(c.Strikes)))
				continue
			}
		}

		// 暂停课程不产生惩罚，但同样把日期滚动到今天，避免恢复后被追溯
		c.WatchedTodayCount = 0
		c.LastUpdateDate = todayStr
		changed = true
		survivors = append(survivors, c)
	}

	if !changed {
		monitoring.ReconcileRuns.WithLabelValues("noop").Inc()
		return nil
	}

	s.repo.Replace(survivors)
	monitoring.ReconcileRuns.WithLabelValues("updated").Inc()
	return s.repo.Save()
}

// dateOnly 去掉时分秒，只保留本地日历日
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween 两个日历日之间相差的天数
// 统一换算到 UTC 午夜再相减，夏令时切换不会影响计数
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
