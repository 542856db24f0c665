package parse

import (
	"regexp"
	"time"

	"holiday-cn/types"
)

// 句子按中文逗号、句号、分号切分
var sentenceSplitRe = regexp.MustCompile(`[，。；]`)

// context 一条描述解析期间的共享状态。
// history 按出现顺序记录解析过的日期，后面的句子靠它补全省略的月份/年份，
// 也靠它抑制重复日期。只在一次 ParseDescription 调用内存活。
type context struct {
	year    int
	history []types.Date

	// 当前正在提取日期的文本片段，报错时带上
	lastInput string
}

// ParseDescription 把一条调休描述解析成若干 Day（不带节日名，由调用方补）。
// year 是公告对应的年份。句子必须按原文顺序处理：
// 后面的句子会引用前面句子补全过的日期上下文。
// 整条描述下来一个日期都没解析到，同样按公告格式变更报错。
func ParseDescription(description string, year int) ([]types.Day, error) {
	c := &context{year: year}

	var days []types.Day
	for _, sentence := range sentenceSplitRe.Split(description, -1) {
		got, err := parseSentence(c, sentence)
		if err != nil {
			return nil, err
		}
		days = append(days, got...)
	}

	if len(c.history) == 0 {
		return nil, &ParseError{Reason: "描述里没有可识别的日期", Input: description}
	}
	return days, nil
}

// date 结合上下文把 (年, 月, 日) 补全成完整日期，0 表示原文里省略了该部分。
func (c *context) date(year, month, day int) (types.Date, error) {
	if day == 0 {
		return types.Date{}, &ParseError{Reason: "缺少日", Input: c.lastInput}
	}

	// 省略月份：继承最近一次解析到的日期的月份
	if month == 0 {
		if len(c.history) == 0 {
			return types.Date{}, &ParseError{Reason: "开头的日期缺少月份", Input: c.lastInput}
		}
		month = int(c.history[len(c.history)-1].Month())
	}

	// 跨年公告：前面全是 2 月之前的日期时，后面出现的 12 月指的是上一年
	// （如 "12月31日至1月2日"）。这里必须检查整个 history，不能只看上一条。
	if year == 0 && month == 12 && len(c.history) > 0 {
		feb1 := time.Date(c.year, time.February, 1, 0, 0, 0, 0, time.UTC)
		if c.maxHistory().Before(feb1) {
			year = c.year - 1
		}
	}

	if year == 0 {
		year = c.year
	}

	d := types.NewDate(year, time.Month(month), day)
	// time.Date 会把 2月30日 这类值悄悄归一化，这里当成语法错误处理
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return types.Date{}, &ParseError{Reason: "日期不合法", Input: c.lastInput}
	}
	return d, nil
}

func (c *context) maxHistory() time.Time {
	max := c.history[0].Time
	for _, d := range c.history[1:] {
		if d.After(max) {
			max = d.Time
		}
	}
	return max
}

func (c *context) seen(d types.Date) bool {
	for _, h := range c.history {
		if h.Equal(d.Time) {
			return true
		}
	}
	return false
}
