package repository

import (
	"course_track_backend/internal/model"
	"course_track_backend/pkg/logger"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SettingsFile 界面设置文件名
const SettingsFile = "settings.json"

// SettingsRepository 持久化界面设置（主题等），与课程文档相互独立
type SettingsRepository struct {
	path string
}

func NewSettingsRepository(dataDir string) *SettingsRepository {
	return &SettingsRepository{path: filepath.Join(dataDir, SettingsFile)}
}

// Load 读取设置，缺失或损坏时返回默认设置
func (r *SettingsRepository) Load() model.Settings {
	var s model.Settings

	data, err := os.ReadFile(r.path)
	if err == nil {
		if err := json.Unmarshal(data, &s); err != nil {
			logger.Log.Warn("Settings document corrupt, using defaults",
				zap.String("path", r.path), zap.Error(err))
		}
	}

	s.Normalize()
	return s
}

// Save 覆盖写入设置
func (r *SettingsRepository) Save(s model.Settings) error {
	s.Normalize()
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}
