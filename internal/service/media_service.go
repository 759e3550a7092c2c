package service

import (
	"course_track_backend/internal/util"
	"course_track_backend/pkg/logger"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MediaService 枚举课程目录下的可播放视频文件
// 只做文件系统遍历，不产生任何修改
type MediaService struct {
	exts map[string]bool
}

// NewMediaService 创建媒体枚举服务，extensions 为识别的视频扩展名（不带点）
func NewMediaService(extensions []string) *MediaService {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	return &MediaService{exts: exts}
}

// ListVideos 递归枚举 folder 下的全部视频文件，返回相对路径的自然排序序列
// 目录缺失、为空或未提供时返回空序列，不报错
func (s *MediaService) ListVideos(folder string) []string {
	files := []string{}
	if folder == "" {
		return files
	}
	if _, err := os.Stat(folder); err != nil {
		return files
	}

	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 个别子目录不可读时跳过，剩余文件照常枚举
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(d.Name())), ".")
		if !s.exts[ext] {
			return nil
		}
		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		logger.Log.Warn("Media walk failed", zap.String("folder", folder), zap.Error(err))
	}

	util.SortNatural(files)
	return files
}

// VideoEntry 目录中一个视频的展示信息
// swagger:model VideoEntry
type VideoEntry struct {
	Path     string   `json:"path"`
	Watched  bool     `json:"watched"`
	Duration *float64 `json:"duration,omitempty"` // 秒，probe 开启且探测成功时返回
}

// ListEntries 返回带观看标记的有序视频列表
// probe 开启时通过 ffprobe 补充时长，探测失败的文件不带时长
func (s *MediaService) ListEntries(folder string, lastIndex int, probe bool) []VideoEntry {
	files := s.ListVideos(folder)
	entries := make([]VideoEntry, 0, len(files))
	for i, f := range files {
		e := VideoEntry{Path: f, Watched: i < lastIndex}
		if probe {
			if info, err := util.GetVideoInfo(filepath.Join(folder, filepath.FromSlash(f))); err == nil {
				d := info.Duration
				e.Duration = &d
			}
		}
		entries = append(entries, e)
	}
	return entries
}
