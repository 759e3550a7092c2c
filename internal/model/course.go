package model

import (
	"time"

	"github.com/google/uuid"
)

// 课程状态
const (
	StatusActive = "active"
	StatusPaused = "paused"
)

// DateLayout 持久化文档中的日期格式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// SkippedDayDate 整天未学习的惩罚记录使用的哨兵日期
const SkippedDayDate = "Skipped Day"

// LegacyStrikeDate 旧版整数计数迁移出的惩罚记录使用的哨兵日期
const LegacyStrikeDate = "Legacy"

// MaxStrikes 惩罚记录达到该数量时课程被自动删除
const MaxStrikes = 5

// DefaultDailyQuota 每日视频配额的兜底默认值
const DefaultDailyQuota = 3

// Strike 记录某一天未按配额观看的视频
// swagger:model Strike
type Strike struct {
	ID     string   `json:"id"`
	Date   string   `json:"date"` // YYYY-MM-DD、"Skipped Day" 或 "Legacy"
	Videos []string `json:"videos"`
}

// Course 一个被跟踪的课程及其每日进度状态
// swagger:model Course
type Course struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Platform          string   `json:"platform"`
	Folder            string   `json:"folder"`
	DailyQuota        int      `json:"daily_quota"`
	Logo              string   `json:"logo"`
	LastIndex         int      `json:"last_index"`
	Status            string   `json:"status"`
	LastUpdateDate    string   `json:"last_update_date"`
	WatchedTodayCount int      `json:"watched_today_count"`
	Strikes           []Strike `json:"strikes_data"`

	// LegacyStrikes 旧版文档的整数惩罚计数，加载时迁移进 Strikes
	LegacyStrikes int `json:"strikes,omitempty"`
}

// NewCourse 创建一个全新的活跃课程，游标和计数均为零
func NewCourse(name, platform, folder string, quota int, logo string, today time.Time) *Course {
	return &Course{
		ID:             uuid.New().String(),
		Name:           name,
		Platform:       platform,
		Folder:         folder,
		DailyQuota:     quota,
		Logo:           logo,
		Status:         StatusActive,
		LastUpdateDate: today.Format(DateLayout),
		Strikes:        []Strike{},
	}
}

// NewStrike 创建一条惩罚记录
func NewStrike(date string, videos []string) Strike {
	return Strike{ID: uuid.New().String(), Date: date, Videos: videos}
}

// Normalize 在反序列化后一次性补齐缺失字段并迁移旧版数据
// 随版本演进新增的字段在旧文档中可能不存在，统一在这里落默认值
func (c *Course) Normalize(today time.Time) {
	if c.Status == "" {
		c.Status = StatusActive
	}
	if c.LastUpdateDate == "" {
		c.LastUpdateDate = today.Format(DateLayout)
	}
	if c.WatchedTodayCount < 0 {
		c.WatchedTodayCount = 0
	}
	if c.LastIndex < 0 {
		c.LastIndex = 0
	}
	if c.DailyQuota <= 0 {
		c.DailyQuota = DefaultDailyQuota
	}
	if c.Strikes == nil {
		c.Strikes = []Strike{}
	}

	// 旧版文档只存一个整数计数，迁移为无视频的惩罚记录
	if c.LegacyStrikes > 0 && len(c.Strikes) == 0 {
		for i := 0; i < c.LegacyStrikes; i++ {
			c.Strikes = append(c.Strikes, NewStrike(LegacyStrikeDate, []string{}))
		}
	}
	c.LegacyStrikes = 0
}

// LastUpdate 解析上次滚动日期，解析失败时按今天处理（不触发结算）
func (c *Course) LastUpdate(today time.Time) time.Time {
	d, err := time.ParseInLocation(DateLayout, c.LastUpdateDate, today.Location())
	if err != nil {
		return today
	}
	return d
}

// FindStrike 按 ID 查找惩罚记录，返回其下标，未找到时返回 -1
func (c *Course) FindStrike(strikeID string) int {
	for i := range c.Strikes {
		if c.Strikes[i].ID == strikeID {
			return i
		}
	}
	return -1
}

// ProjectedCourse 在课程记录上叠加展示用的派生字段，每次读取时重新计算，不落盘
// swagger:model ProjectedCourse
type ProjectedCourse struct {
	Course
	Progress     int    `json:"progress"`
	TotalVideos  int    `json:"total_videos"`
	DailyPercent int    `json:"daily_percent"`
	QuotaDisplay string `json:"quota_display"`
	IsQuotaMet   bool   `json:"is_quota_met"`
	StrikesCount int    `json:"strikes_count"`
}
