package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"holiday-cn/logic/ics"
	"holiday-cn/storage/postgres"
	"holiday-cn/types"
)

// QueryDate 查某一天。不在调休表里的日期按星期几兜底：周末算休息日。
func (s *HolidayService) QueryDate(ctx context.Context, date time.Time) (*types.Day, error) {
	row, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			wd := date.Weekday()
			return &types.Day{
				Date:     types.NewDate(date.Year(), date.Month(), date.Day()),
				IsOffDay: wd == time.Saturday || wd == time.Sunday,
			}, nil
		}
		return nil, err
	}
	return dayFromRow(row), nil
}

// QueryMonth 查一个月内的调休记录
func (s *HolidayService) QueryMonth(ctx context.Context, year int, month time.Month) ([]types.Day, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	rows, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return daysFromRows(rows), nil
}

// YearDocument 拼出一年的完整 JSON 文档（天 + 来源公告链接）
func (s *HolidayService) YearDocument(ctx context.Context, year int) (*types.YearData, error) {
	rows, err := s.repo.ListYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("无法获取%d年的数据", year)
	}
	papers, err := s.repo.ListPapers(ctx, year)
	if err != nil {
		return nil, err
	}
	return &types.YearData{Year: year, Papers: papers, Days: daysFromRows(rows)}, nil
}

// YearCalendar 渲染一年的 ICS 日历
func (s *HolidayService) YearCalendar(ctx context.Context, year int) (string, error) {
	data, err := s.YearDocument(ctx, year)
	if err != nil {
		return "", err
	}
	return ics.Generate(data.Days), nil
}

func dayFromRow(row *postgres.HolidayDay) *types.Day {
	return &types.Day{
		Name:     row.Name,
		Date:     types.NewDate(row.Date.Year(), row.Date.Month(), row.Date.Day()),
		IsOffDay: row.IsOffDay,
	}
}

func daysFromRows(rows []postgres.HolidayDay) []types.Day {
	days := make([]types.Day, 0, len(rows))
	for i := range rows {
		days = append(days, *dayFromRow(&rows[i]))
	}
	return days
}
