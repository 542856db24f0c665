package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"holiday-cn/logic/fetch"
	"holiday-cn/logic/parse"
	"holiday-cn/storage/postgres"
	"holiday-cn/types"
)

type HolidayService struct {
	repo    *postgres.HolidayRepo
	fetcher *fetch.Client
}

// 构造函数：依赖注入
func NewHolidayService(repo *postgres.HolidayRepo, fetcher *fetch.Client) *HolidayService {
	return &HolidayService{
		repo:    repo,
		fetcher: fetcher,
	}
}

// FetchYear 抓取并解析一年的全部公告。
// 同一个日期出现在多份公告里时，后发布（链接排序靠后）的覆盖先前的。
func (s *HolidayService) FetchYear(ctx context.Context, year int) (*types.YearData, error) {
	startTime := time.Now()

	papers, err := s.fetcher.SearchPapers(year)
	if err != nil {
		return nil, err
	}
	fmt.Printf(">>> [Fetch] %d年找到 %d 份公告, 耗时: %v\n", year, len(papers), time.Since(startTime))

	merged := map[string]types.Day{}
	for _, paper := range papers {
		days, err := s.parsePaper(year, paper)
		if err != nil {
			return nil, fmt.Errorf("解析公告失败 %s: %w", paper, err)
		}
		for _, d := range days {
			merged[d.Date.String()] = d
		}
	}

	days := make([]types.Day, 0, len(merged))
	for _, d := range merged {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date.Time)
	})

	return &types.YearData{Year: year, Papers: papers, Days: days}, nil
}

// parsePaper 解析单份公告：人工录入的直接用，其余走正文提取 + 语法解析。
// 各公告之间没有共享状态，日期上下文只在单条描述内部存活。
func (s *HolidayService) parsePaper(year int, paperURL string) ([]types.Day, error) {
	if pre, ok := fetch.PreParsed[paperURL]; ok {
		fmt.Printf(">>> [Fetch] 命中人工录入公告: %s\n", paperURL)
		return append([]types.Day(nil), pre...), nil
	}

	text, err := s.fetcher.PaperText(paperURL)
	if err != nil {
		return nil, err
	}

	rules, err := parse.ExtractRules(strings.Split(text, "\n"))
	if err != nil {
		return nil, err
	}

	var days []types.Day
	for _, rule := range rules {
		parsed, err := parse.ParseDescription(rule.Description, year)
		if err != nil {
			return nil, err
		}
		for _, d := range parsed {
			d.Name = rule.Name
			days = append(days, d)
		}
	}
	return days, nil
}

// RefreshYears 抓取并落库若干年份。
// 年份之间互不依赖，可以并行抓；任何一年解析失败整体报错，等人工处理。
func (s *HolidayService) RefreshYears(ctx context.Context, years ...int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, year := range years {
		year := year
		g.Go(func() error {
			data, err := s.FetchYear(ctx, year)
			if err != nil {
				return err
			}

			rows := make([]postgres.HolidayDay, 0, len(data.Days))
			for _, d := range data.Days {
				rows = append(rows, postgres.HolidayDay{
					Date:     d.Date.Time,
					Year:     year,
					Name:     d.Name,
					IsOffDay: d.IsOffDay,
				})
			}
			if err := s.repo.ReplaceYear(ctx, year, data.Papers, rows); err != nil {
				return fmt.Errorf("落库失败 %d: %w", year, err)
			}
			log.Printf("已更新 %d 年数据, 共 %d 天", year, len(rows))
			return nil
		})
	}
	return g.Wait()
}

// DefaultYears 默认刷新窗口：今年和明年（明年的公告一般 11 月发布）
func (s *HolidayService) DefaultYears() []int {
	now := time.Now()
	return []int{now.Year(), now.Year() + 1}
}
