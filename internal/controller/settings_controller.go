package controller

import (
	"course_track_backend/internal/model"
	"course_track_backend/internal/repository"
	"course_track_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsRepo *repository.SettingsRepository
}

func NewSettingsController(settingsRepo *repository.SettingsRepository) *SettingsController {
	return &SettingsController{SettingsRepo: settingsRepo}
}

// @Summary 获取界面设置
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /settings/theme [get]
func (c *SettingsController) GetTheme(ctx *gin.Context) {
	util.Success(ctx, c.SettingsRepo.Load())
}

// @Summary 保存界面设置
// @Tags 设置
// @Accept json
// @Produce json
// @Param settings body model.Settings true "设置"
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /settings/theme [put]
func (c *SettingsController) PutTheme(ctx *gin.Context) {
	var req model.Settings
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	req.Normalize()
	if err := c.SettingsRepo.Save(req); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, req)
}
