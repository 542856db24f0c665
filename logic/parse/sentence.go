package parse

import (
	"regexp"
	"strconv"
	"strings"

	"holiday-cn/types"
)

// 句型匹配，按固定顺序尝试，命中第一个就结束
var (
	// "…放假" / "…补休" 等结尾 → 这些天放假
	restRe = regexp.MustCompile(`^(.+)(?:放假|补休|调休|公休)+(?:\d+天)?$`)
	// "…上班" 结尾 → 这些天补班
	workRe = regexp.MustCompile(`^(.+)上班$`)
	// "A调至B" → A 改上班，B 改放假
	shiftRe = regexp.MustCompile(`^(.+)调至(.+)$`)
)

// 日期提取，三种写法对同一段文本依次全跑一遍，结果拼接
var (
	// 单个日期："(2019年)(5月)1日"，年月都可省略
	singleDateRe = regexp.MustCompile(`(?:(\d+)年)?(?:(\d+)月)?(\d+)日`)
	// 日期区间："5月1日至4日"、"12月31日—1月2日"
	dateRangeRe = regexp.MustCompile(`(?:(\d+)年)?(?:(\d+)月)?(\d+)日(?:至|-|—)(?:(\d+)年)?(?:(\d+)月)?(\d+)日`)
	// 顿号列表："4月28日（星期日）、5月5日（星期日）"，括号里的注记忽略
	dateListRe = regexp.MustCompile(`(?:(\d+)年)?(?:(\d+)月)?(\d+)日(?:（[^）]+）)?(?:、(?:(\d+)年)?(?:(\d+)月)?(\d+)日(?:（[^）]+）)?)+`)
)

var parenReplacer = strings.NewReplacer("(", "（", ")", "）")

// parseSentence 对一个句子依次尝试各个句型，返回该句产出的调休结果。
// 没有任何句型命中时静默跳过（句子可能是 "共7天" 这类补充说明），
// 整条描述是否白跑由 ParseDescription 最后统一判定。
func parseSentence(c *context, sentence string) ([]types.Day, error) {
	if m := restRe.FindStringSubmatch(sentence); m != nil {
		dates, err := c.extractDates(m[1])
		if err != nil {
			return nil, err
		}
		return flagDays(dates, true), nil
	}

	if m := workRe.FindStringSubmatch(sentence); m != nil {
		dates, err := c.extractDates(m[1])
		if err != nil {
			return nil, err
		}
		return flagDays(dates, false), nil
	}

	if m := shiftRe.FindStringSubmatch(sentence); m != nil {
		// 被调走的原休息日改上班
		from, err := c.extractDates(m[1])
		if err != nil {
			return nil, err
		}
		// 调入的那天改休息
		to, err := c.extractDates(m[2])
		if err != nil {
			return nil, err
		}
		return append(flagDays(from, false), flagDays(to, true)...), nil
	}

	if days, ok := specialCases[sentence]; ok {
		return append([]types.Day(nil), days...), nil
	}

	return nil, nil
}

// extractDates 从一段文本里提取全部日期。
// 三种写法都跑，原始命中数为零则报错（句型命中了却取不出日期说明语法变了）。
// 每个日期先入 history 再判重：重复出现的日期不再产出，但不报错，
// 这是整个解析层唯一主动吞掉的"异常"。
func (c *context) extractDates(text string) ([]types.Date, error) {
	text = parenReplacer.Replace(text)
	c.lastInput = text

	count := 0
	var out []types.Date

	emit := func(d types.Date) {
		count++
		dup := c.seen(d)
		c.history = append(c.history, d)
		if !dup {
			out = append(out, d)
		}
	}

	// 写法一：逐个日期
	for _, m := range singleDateRe.FindAllStringSubmatch(text, -1) {
		d, err := c.date(castInt(m[1]), castInt(m[2]), castInt(m[3]))
		if err != nil {
			return nil, err
		}
		emit(d)
	}

	// 写法二：闭区间，展开成区间里的每一天
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := c.date(castInt(m[1]), castInt(m[2]), castInt(m[3]))
		if err != nil {
			return nil, err
		}
		end, err := c.date(castInt(m[4]), castInt(m[5]), castInt(m[6]))
		if err != nil {
			return nil, err
		}
		for d := start; !d.After(end.Time); d = d.AddDays(1) {
			emit(d)
		}
	}

	// 写法三：顿号列表（重复分组只留下首尾两个元素，
	// 中间的日期写法一已经逐个覆盖过了）
	for _, m := range dateListRe.FindAllStringSubmatch(text, -1) {
		for i := 1; i < len(m); i += 3 {
			if m[i+2] == "" {
				continue
			}
			d, err := c.date(castInt(m[i]), castInt(m[i+1]), castInt(m[i+2]))
			if err != nil {
				return nil, err
			}
			emit(d)
		}
	}

	if count == 0 {
		return nil, &ParseError{Reason: "文本里提取不到日期", Input: text}
	}
	return out, nil
}

func flagDays(dates []types.Date, isOffDay bool) []types.Day {
	days := make([]types.Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, types.Day{Date: d, IsOffDay: isOffDay})
	}
	return days
}

func castInt(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
