package job

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"holiday-cn/service"
)

func StartCronJob(svc *service.HolidayService) {
	c := cron.New()

	// 每天凌晨 2 点刷新今年和明年的数据
	_, _ = c.AddFunc("0 2 * * *", func() {
		ctx := context.Background()
		years := svc.DefaultYears()
		if err := svc.RefreshYears(ctx, years...); err != nil {
			fmt.Println("[Cron] Error:", err)
		} else {
			fmt.Printf("[Cron] 已刷新年份 %v\n", years)
		}
	})

	c.Start()
}
