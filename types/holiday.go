package types

import (
	"fmt"
	"strings"
	"time"
)

// Date 只带年月日的日期，JSON 按 "2006-01-02" 序列化（和 holiday-cn 数据文件一致）
type Date struct {
	time.Time
}

// NewDate 构造一个 UTC 零点的纯日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %v", s, err)
	}
	d.Time = t
	return nil
}

// AddDays 往后（或负数往前）移动 n 天
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// Day 一个日历日的调休结果
// isOffDay=true 表示当天放假，false 表示当天补班
type Day struct {
	Name     string `json:"name"`
	Date     Date   `json:"date"`
	IsOffDay bool   `json:"isOffDay"`
}

// Rule 公告里的一条放假安排（如 "劳动节: 2019年5月1日至4日放假调休…"）
type Rule struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// YearData 一年的完整数据，对应对外输出的 JSON 文档结构
type YearData struct {
	Year   int      `json:"year"`
	Papers []string `json:"papers"`
	Days   []Day    `json:"days"`
}
