package controller

import (
	"course_track_backend/internal/repository"
	"course_track_backend/internal/util"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	CourseRepo *repository.CourseRepository
}

func NewHealthController(courseRepo *repository.CourseRepository) *HealthController {
	return &HealthController{CourseRepo: courseRepo}
}

// @Summary 健康检查
// @Description 检查服务状态与数据目录可写性
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 数据目录必须可写，否则任何变更都无法持久化
	dir := filepath.Dir(c.CourseRepo.Path())
	probe, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Data directory not writable")
		return
	}
	probe.Close()
	os.Remove(probe.Name())

	// ffmpeg 不可用只影响时长探测，不算不健康
	ffmpegStatus := "up"
	if _, err := util.GetFFmpegVersion(); err != nil {
		ffmpegStatus = "unavailable"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": "up",
			"ffmpeg":  ffmpegStatus,
		},
	})
}
