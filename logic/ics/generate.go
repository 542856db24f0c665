package ics

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"holiday-cn/types"
)

// UID 命名空间，固定死保证同一区间每次生成的 UID 都一样
var uidNamespace = uuid.MustParse("8e3dbd34-54d5-4f85-a855-d7ea04279ec2")

// Generate 把一年的调休数据渲染成 ICS 日历。
// days 必须按日期升序；每个连续区间产出一个全天事件，
// 事件区间是左闭右开的 [from, to+1)，单日事件也占满一整天。
func Generate(days []types.Day) string {
	var sb strings.Builder
	line := func(format string, args ...any) {
		sb.WriteString(fmt.Sprintf(format, args...))
		sb.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//holiday-cn//CN")
	line("METHOD:PUBLISH")
	line("CLASS:PUBLIC")

	// 时区块整个文件只声明一次：固定 UTC+8，无夏令时
	line("BEGIN:VTIMEZONE")
	line("TZID:Asia/Shanghai")
	line("BEGIN:STANDARD")
	line("DTSTART:19700101T000000")
	line("TZOFFSETFROM:+0800")
	line("TZOFFSETTO:+0800")
	line("END:STANDARD")
	line("END:VTIMEZONE")

	for _, r := range Coalesce(days) {
		start := r.From.Date.Format("20060102")
		end := r.To.Date.AddDays(1).Format("20060102")

		line("BEGIN:VEVENT")
		line("SUMMARY:%s", r.Title())
		line("DTSTART;VALUE=DATE:%s", start)
		line("DTEND;VALUE=DATE:%s", end)
		line("DTSTAMP;VALUE=DATE:%s", start)
		line("UID:%s", eventUID(start, end, r.Title()))
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return sb.String()
}

// eventUID 由区间本身推出、可复现的事件标识
func eventUID(start, end, title string) string {
	return uuid.NewSHA1(uidNamespace, []byte(start+"/"+end+"/"+title)).String()
}
