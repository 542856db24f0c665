package ics

import (
	"holiday-cn/types"
)

// DateRange 一段连续且同为休息/补班的日期区间，From、To 都含在区间内
type DateRange struct {
	From types.Day
	To   types.Day
}

// Title 区间对应的日历事件标题
func (r DateRange) Title() string {
	if r.From.IsOffDay {
		return r.From.Name + "假期"
	}
	return "上班(补" + r.From.Name + "假期)"
}

// Coalesce 把按日期升序排好的调休列表合并成连续区间。
// 下一天紧跟当前区间末尾（正好差一天）且休/班标记相同就并入，
// 否则收掉当前区间、另起一段；排序由调用方保证。
func Coalesce(days []types.Day) []DateRange {
	if len(days) == 0 {
		return nil
	}

	var ranges []DateRange
	cur := DateRange{From: days[0], To: days[0]}
	for _, day := range days[1:] {
		sameRun := day.Date.Equal(cur.To.Date.AddDays(1).Time) &&
			day.IsOffDay == cur.To.IsOffDay
		if sameRun {
			cur.To = day
			continue
		}
		ranges = append(ranges, cur)
		cur = DateRange{From: day, To: day}
	}
	return append(ranges, cur)
}
