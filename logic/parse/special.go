package parse

import (
	"time"

	"holiday-cn/types"
)

// specialCases 已知无法被通用句型解析的整句，直接映射到固定结果。
// 键必须和切分后的句子逐字相同。新公告解析失败时优先考虑补句型，
// 实在补不动语法的才加到这里。
var specialCases = map[string][]types.Day{
	"延长2020年春节假期至2月2日（农历正月初九": {
		{Date: types.NewDate(2020, time.January, 31), IsOffDay: true},
		{Date: types.NewDate(2020, time.February, 1), IsOffDay: true},
		{Date: types.NewDate(2020, time.February, 2), IsOffDay: true},
	},
}
