package parse

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday-cn/types"
)

func day(year int, month time.Month, d int, off bool) types.Day {
	return types.Day{Date: types.NewDate(year, month, d), IsOffDay: off}
}

func sortedByDate(days []types.Day) []types.Day {
	out := append([]types.Day(nil), days...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}

func TestParseDescriptionMonthInherit(t *testing.T) {
	// 描述里从头到尾没写年份，月份也只在第一次出现，后面靠上下文补全
	got, err := ParseDescription("1月21日至27日放假调休，共7天。1月28日（星期六）、1月29日（星期日）上班。", 2023)
	require.NoError(t, err)

	want := []types.Day{
		day(2023, time.January, 21, true),
		day(2023, time.January, 22, true),
		day(2023, time.January, 23, true),
		day(2023, time.January, 24, true),
		day(2023, time.January, 25, true),
		day(2023, time.January, 26, true),
		day(2023, time.January, 27, true),
		day(2023, time.January, 28, false),
		day(2023, time.January, 29, false),
	}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionRangeWithWorkdays(t *testing.T) {
	got, err := ParseDescription("2019年5月1日至4日放假调休，共4天。4月28日（星期日）、5月5日（星期日）上班。", 2019)
	require.NoError(t, err)

	want := []types.Day{
		day(2019, time.April, 28, false),
		day(2019, time.May, 1, true),
		day(2019, time.May, 2, true),
		day(2019, time.May, 3, true),
		day(2019, time.May, 4, true),
		day(2019, time.May, 5, false),
	}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionYearBoundary(t *testing.T) {
	// 跨年公告：显式年份的区间照常解析；
	// 后面的 "12月30日" 没写年份，但前面出现的日期都在 2 月之前，
	// 按约定指的是上一年的 12 月
	got, err := ParseDescription("2022年12月31日至2023年1月2日放假调休，共3天。12月30日放假", 2023)
	require.NoError(t, err)

	want := []types.Day{
		day(2022, time.December, 30, true),
		day(2022, time.December, 31, true),
		day(2023, time.January, 1, true),
		day(2023, time.January, 2, true),
	}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionShift(t *testing.T) {
	// "A调至B"：A 变上班，B 变放假，方向不能反
	got, err := ParseDescription("10月1日公休日调至10月4日", 2019)
	require.NoError(t, err)

	want := []types.Day{
		day(2019, time.October, 1, false),
		day(2019, time.October, 4, true),
	}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionDuplicateKeepsFirst(t *testing.T) {
	// 同一天出现在两个句子里，只产出第一次的分类
	got, err := ParseDescription("1月1日放假，1月1日上班", 2019)
	require.NoError(t, err)

	want := []types.Day{day(2019, time.January, 1, true)}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionASCIIParens(t *testing.T) {
	got, err := ParseDescription("4月28日(星期日)、5月5日(星期日)上班", 2019)
	require.NoError(t, err)

	want := []types.Day{
		day(2019, time.April, 28, false),
		day(2019, time.May, 5, false),
	}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionSpecialCase(t *testing.T) {
	// 逐字命中 specialCases 的句子直接取人工录入结果，
	// 后半句 "…起正常上班" 仍走通用句型
	got, err := ParseDescription("延长2020年春节假期至2月2日（农历正月初九，2月3日（正月初十）起正常上班。", 2020)
	require.NoError(t, err)

	want := []types.Day{
		day(2020, time.January, 31, true),
		day(2020, time.February, 1, true),
		day(2020, time.February, 2, true),
		day(2020, time.February, 3, false),
	}
	assert.Equal(t, want, sortedByDate(got))
}

func TestParseDescriptionNoDatesIsFatal(t *testing.T) {
	_, err := ParseDescription("各地区、各部门要妥善安排好值班工作", 2019)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Input, "值班工作")
}

func TestParseDescriptionEmptySpanIsFatal(t *testing.T) {
	// 句型命中了（"…上班" 结尾）但前面取不出任何日期，必须报错而不是返回空
	_, err := ParseDescription("节后正常上班", 2019)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "节后正常", parseErr.Input)
}

func TestParseDescriptionLeadingMonthlessDateIsFatal(t *testing.T) {
	// 第一个日期就没写月份，没有上下文可继承
	_, err := ParseDescription("1日放假", 2019)
	require.Error(t, err)
}

func TestParseDescriptionRestSuffixVariants(t *testing.T) {
	for _, desc := range []string{
		"5月1日放假",
		"5月1日补休",
		"5月1日调休",
		"5月1日公休",
		"5月1日放假调休，共1天",
	} {
		got, err := ParseDescription(desc, 2021)
		require.NoError(t, err, desc)
		assert.Equal(t, []types.Day{day(2021, time.May, 1, true)}, sortedByDate(got), desc)
	}
}
