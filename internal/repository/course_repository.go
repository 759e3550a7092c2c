package repository

import (
	"course_track_backend/internal/model"
	"course_track_backend/pkg/logger"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// CourseFile 持久化文档文件名
const CourseFile = "courses.json"

// CourseRepository 独占课程列表的内存副本与磁盘文档
// 加载必须是防御性的：文档缺失或损坏时回退为空列表，绝不让启动失败
type CourseRepository struct {
	path    string
	courses []*model.Course
}

// NewCourseRepository 创建仓库实例，dataDir 为持久化目录
func NewCourseRepository(dataDir string) *CourseRepository {
	return &CourseRepository{path: filepath.Join(dataDir, CourseFile)}
}

// Load 读取持久化文档并归一化每条记录
func (r *CourseRepository) Load(today time.Time) {
	r.courses = []*model.Course{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("Failed to read course document, starting empty",
				zap.String("path", r.path), zap.Error(err))
		}
		return
	}

	var courses []*model.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		logger.Log.Warn("Course document corrupt, starting empty",
			zap.String("path", r.path), zap.Error(err))
		return
	}

	for _, c := range courses {
		if c == nil {
			continue
		}
		c.Normalize(today)
		r.courses = append(r.courses, c)
	}
}

// Save 序列化全量课程列表覆盖原文档
// 先写同目录临时文件再原子替换，避免半截文档
func (r *CourseRepository) Save() error {
	data, err := json.MarshalIndent(r.courses, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), CourseFile+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// All 返回内存中的课程列表（调用方不得跨调用保留）
func (r *CourseRepository) All() []*model.Course {
	return r.courses
}

// FindByID 按 ID 查找课程，未找到返回 nil
func (r *CourseRepository) FindByID(id string) *model.Course {
	for _, c := range r.courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Add 追加一条课程记录
func (r *CourseRepository) Add(c *model.Course) {
	r.courses = append(r.courses, c)
}

// Remove 按 ID 删除课程，返回是否删除了记录
func (r *CourseRepository) Remove(id string) bool {
	kept := r.courses[:0]
	removed := false
	for _, c := range r.courses {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	r.courses = kept
	return removed
}

// Replace 用结算后的存活列表整体替换内存列表
func (r *CourseRepository) Replace(courses []*model.Course) {
	r.courses = courses
}

// Path 持久化文档路径，供健康检查使用
func (r *CourseRepository) Path() string {
	return r.path
}
