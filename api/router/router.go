package router

import (
	"github.com/gin-gonic/gin"

	"holiday-cn/api/handler"
)

func RegisterRoutes(r *gin.Engine, holidayH *handler.HolidayHandler) {
	api := r.Group("/api/v1")
	{
		holiday := api.Group("/holiday")
		{
			holiday.GET("/day/:date", holidayH.GetDay)
			holiday.GET("/year/:year", holidayH.GetYear)
			holiday.GET("/ics/:year", holidayH.GetICS)
			holiday.POST("/refresh", holidayH.Refresh)
		}
	}
}
