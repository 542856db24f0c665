package fetch

import (
	"time"

	"holiday-cn/types"
)

// PreParsed 个别公告的措辞完全绕开了解析语法，直接人工录入结果。
// 命中这里的链接不再抓取正文。
var PreParsed = map[string][]types.Day{
	"http://www.gov.cn/zhengce/content/2015-05/13/content_9742.htm": {
		{
			Name:     "抗日战争暨世界反法西斯战争胜利70周年纪念日",
			Date:     types.NewDate(2015, time.September, 3),
			IsOffDay: true,
		},
		{
			Name:     "抗日战争暨世界反法西斯战争胜利70周年纪念日",
			Date:     types.NewDate(2015, time.September, 4),
			IsOffDay: true,
		},
		{
			Name:     "抗日战争暨世界反法西斯战争胜利70周年纪念日",
			Date:     types.NewDate(2015, time.September, 5),
			IsOffDay: true,
		},
		{
			Name:     "抗日战争暨世界反法西斯战争胜利70周年纪念日",
			Date:     types.NewDate(2015, time.September, 6),
			IsOffDay: false,
		},
	},
}
