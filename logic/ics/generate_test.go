package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday-cn/types"
)

func TestGenerateCalendarLayout(t *testing.T) {
	days := []types.Day{
		day("清明节", 2019, time.April, 5, true),
		day("劳动节", 2019, time.May, 1, true),
		day("劳动节", 2019, time.May, 2, true),
	}

	cal := Generate(days)

	assert.True(t, strings.HasPrefix(cal, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(cal, "END:VCALENDAR\r\n"))
	assert.Contains(t, cal, "VERSION:2.0\r\n")
	assert.Contains(t, cal, "METHOD:PUBLISH\r\n")

	// 时区块只声明一次，固定 UTC+8
	assert.Equal(t, 1, strings.Count(cal, "BEGIN:VTIMEZONE"))
	assert.Contains(t, cal, "TZID:Asia/Shanghai\r\n")
	assert.Contains(t, cal, "TZOFFSETTO:+0800\r\n")

	// 两段区间 → 两个事件
	assert.Equal(t, 2, strings.Count(cal, "BEGIN:VEVENT"))
	assert.Contains(t, cal, "SUMMARY:清明节假期\r\n")
	assert.Contains(t, cal, "SUMMARY:劳动节假期\r\n")
}

func TestGenerateAllDayEventSpansAreHalfOpen(t *testing.T) {
	cal := Generate([]types.Day{day("清明节", 2019, time.April, 5, true)})

	// 单日事件也要占满一整天: [4月5日, 4月6日)
	assert.Contains(t, cal, "DTSTART;VALUE=DATE:20190405\r\n")
	assert.Contains(t, cal, "DTEND;VALUE=DATE:20190406\r\n")
}

func TestGenerateWorkdayEventTitle(t *testing.T) {
	cal := Generate([]types.Day{day("劳动节", 2019, time.April, 28, false)})
	assert.Contains(t, cal, "SUMMARY:上班(补劳动节假期)\r\n")
}

func TestGenerateDeterministicUID(t *testing.T) {
	days := []types.Day{
		day("元旦", 2019, time.January, 1, true),
	}

	first := Generate(days)
	second := Generate(days)
	assert.Equal(t, first, second)

	var uid string
	for _, line := range strings.Split(first, "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			uid = strings.TrimPrefix(line, "UID:")
		}
	}
	require.NotEmpty(t, uid)

	// 区间变了 UID 必须跟着变
	moved := Generate([]types.Day{day("元旦", 2019, time.January, 2, true)})
	assert.NotContains(t, moved, uid)
}
