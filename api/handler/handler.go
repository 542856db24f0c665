package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"holiday-cn/api/response"
	"holiday-cn/service"
)

type HolidayHandler struct {
	svc *service.HolidayService
}

func NewHolidayHandler(svc *service.HolidayService) *HolidayHandler {
	return &HolidayHandler{svc: svc}
}

// GetDay 查询接口，date 支持三种粒度: 2006 / 2006-01 / 2006-01-02
func (h *HolidayHandler) GetDay(c *gin.Context) {
	param := c.Param("date")
	ctx := c.Request.Context()

	if t, err := time.Parse("2006-01-02", param); err == nil {
		day, err := h.svc.QueryDate(ctx, t)
		if err != nil {
			response.Fail(c, err.Error())
			return
		}
		response.Success(c, day)
		return
	}

	if t, err := time.Parse("2006-01", param); err == nil {
		days, err := h.svc.QueryMonth(ctx, t.Year(), t.Month())
		if err != nil {
			response.Fail(c, err.Error())
			return
		}
		response.Success(c, days)
		return
	}

	if t, err := time.Parse("2006", param); err == nil {
		data, err := h.svc.YearDocument(ctx, t.Year())
		if err != nil {
			response.NotFound(c, err.Error())
			return
		}
		response.Success(c, data.Days)
		return
	}

	response.Fail(c, "无效的日期")
}

// GetYear 返回一年的完整 JSON 文档，和数据文件同构
func (h *HolidayHandler) GetYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Fail(c, "无效的年份")
		return
	}

	data, err := h.svc.YearDocument(c.Request.Context(), year)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, data)
}

// GetICS 下载一年的 ICS 日历
func (h *HolidayHandler) GetICS(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Fail(c, "无效的年份")
		return
	}

	cal, err := h.svc.YearCalendar(c.Request.Context(), year)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%d.ics"`, year))
	c.Data(200, "text/calendar; charset=utf-8", []byte(cal))
}

type refreshRequest struct {
	Years []int `json:"years"`
}

// Refresh 手动触发抓取，body 不传年份时刷新今年和明年
func (h *HolidayHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	years := req.Years
	if len(years) == 0 {
		years = h.svc.DefaultYears()
	}
	fmt.Printf(">>> [Refresh] 手动刷新年份: %v\n", years)

	if err := h.svc.RefreshYears(c.Request.Context(), years...); err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, map[string]any{"years": years})
}
