package model

// 主题取值
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings 界面设置，独立于课程文档持久化
// swagger:model Settings
type Settings struct {
	Theme string `json:"theme"`
}

// NormalizeSettings 补齐缺失或非法的设置项
func (s *Settings) Normalize() {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		s.Theme = ThemeLight
	}
}
