package controller

import (
	"course_track_backend/internal/service"
	"course_track_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

type courseRequest struct {
	Name       string `json:"name" binding:"required"`
	Platform   string `json:"platform"`
	Folder     string `json:"folder"`
	DailyQuota int    `json:"daily_quota" binding:"required,min=1"`
	Logo       string `json:"logo"`
}

type filenameRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// @Summary 获取课程列表
// @Description 先执行每日结算，再返回叠加派生字段的全量课程
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.List(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 新建课程
// @Tags 课程
// @Accept json
// @Produce json
// @Param course body courseRequest true "课程信息"
// @Success 201 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses [post]
func (c *CourseController) AddCourse(ctx *gin.Context) {
	var req courseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courses, err := c.CourseService.Add(time.Now(), req.Name, req.Platform, req.Folder, req.DailyQuota, req.Logo)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, courses)
}

// @Summary 更新课程设置
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param course body courseRequest true "课程信息"
// @Success 200 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req courseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courses, err := c.CourseService.Update(time.Now(), ctx.Param("id"), req.Name, req.Platform, req.Folder, req.DailyQuota, req.Logo)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 删除课程
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courses, err := c.CourseService.Delete(time.Now(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 切换课程状态
// @Description 在 active 与 paused 之间切换，恢复时日程从今天重新开始
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses/{id}/toggle [post]
func (c *CourseController) ToggleStatus(ctx *gin.Context) {
	courses, err := c.CourseService.ToggleStatus(time.Now(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 播放下一个视频
// @Description 状态为 success / finished / quota_reached / error 之一
// @Tags 播放
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Router /courses/{id}/play [post]
func (c *CourseController) PlayNext(ctx *gin.Context) {
	status := c.CourseService.PlayNext(ctx.Param("id"))
	util.Success(ctx, gin.H{"status": status})
}

// @Summary 确认看完一个视频
// @Description 游标与当日计数各加一；配额已满时无操作
// @Tags 播放
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses/{id}/progress [post]
func (c *CourseController) MarkProgress(ctx *gin.Context) {
	courses, err := c.CourseService.MarkProgress(time.Now(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 播放错过的视频
// @Tags 播放
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param body body filenameRequest true "相对路径"
// @Success 200 {object} util.Response
// @Router /courses/{id}/play-missed [post]
func (c *CourseController) PlayMissed(ctx *gin.Context) {
	var req filenameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	opened := c.CourseService.PlayMissed(ctx.Param("id"), req.Filename)
	util.Success(ctx, gin.H{"opened": opened})
}

// @Summary 补看后消除惩罚记录中的视频
// @Description 视频列表被清空的惩罚记录随之删除；游标不变
// @Tags 播放
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param strikeId path string true "惩罚记录ID"
// @Param body body filenameRequest true "相对路径"
// @Success 200 {object} util.Response{data=[]model.ProjectedCourse}
// @Router /courses/{id}/strikes/{strikeId}/redeem [post]
func (c *CourseController) RedeemStrike(ctx *gin.Context) {
	var req filenameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courses, err := c.CourseService.Redeem(time.Now(), ctx.Param("id"), ctx.Param("strikeId"), req.Filename)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 课程目录的视频清单
// @Description probe=1 时通过 ffprobe 附带时长
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Param probe query string false "是否探测时长"
// @Success 200 {object} util.Response{data=[]service.VideoEntry}
// @Router /courses/{id}/videos [get]
func (c *CourseController) ListVideos(ctx *gin.Context) {
	entries, err := c.CourseService.Videos(ctx.Param("id"), ctx.Query("probe") == "1")
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 课程 logo 的 data URI
// @Description logo 缺失或不可读时返回空串
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Router /courses/{id}/logo [get]
func (c *CourseController) Logo(ctx *gin.Context) {
	uri, err := c.CourseService.LogoDataURI(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"data_uri": uri})
}
