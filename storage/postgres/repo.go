package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// HolidayRepo 封装对调休数据表的所有操作
type HolidayRepo struct {
	db *gorm.DB
}

// NewHolidayRepo 构造函数
func NewHolidayRepo(db *gorm.DB) *HolidayRepo {
	return &HolidayRepo{db: db}
}

// ReplaceYear 用一次刷新的结果整体替换某一年的数据。
// 删旧插新放在同一个事务里，刷新失败不会留下半年数据。
func (r *HolidayRepo) ReplaceYear(ctx context.Context, year int, papers []string, days []HolidayDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).Delete(&HolidayDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("year = ?", year).Delete(&HolidayPaper{}).Error; err != nil {
			return err
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		for _, u := range papers {
			if err := tx.Create(&HolidayPaper{Year: year, URL: u}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByDate 查某一天的调休记录，没有时返回 gorm.ErrRecordNotFound
func (r *HolidayRepo) GetByDate(ctx context.Context, date time.Time) (*HolidayDay, error) {
	var day HolidayDay
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		First(&day).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// ListYear 查一年的调休记录，按日期升序
func (r *HolidayRepo) ListYear(ctx context.Context, year int) ([]HolidayDay, error) {
	var days []HolidayDay
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("date").
		Find(&days).Error
	return days, err
}

// ListRange 查 [start, end] 闭区间内的调休记录，按日期升序
func (r *HolidayRepo) ListRange(ctx context.Context, start, end time.Time) ([]HolidayDay, error) {
	var days []HolidayDay
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date").
		Find(&days).Error
	return days, err
}

// ListPapers 查某一年的公告链接，按插入顺序
func (r *HolidayRepo) ListPapers(ctx context.Context, year int) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Model(&HolidayPaper{}).
		Where("year = ?", year).
		Order("id").
		Pluck("url", &urls).Error
	return urls, err
}

// Years 已入库的年份列表，升序
func (r *HolidayRepo) Years(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&HolidayDay{}).
		Distinct("year").
		Order("year").
		Pluck("year", &years).Error
	return years, err
}
