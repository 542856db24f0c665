package postgres

import (
	"time"
)

// HolidayDay 对应数据库里的 holiday_days 表，一行就是一个调休日。
// 全流程不变式：同一个日期最多一行，后发布的公告覆盖先发布的。
type HolidayDay struct {
	Date     time.Time `gorm:"column:date;primaryKey;type:date"`
	Year     int       `gorm:"column:year;index;not null"`
	Name     string    `gorm:"column:name;type:varchar(255);not null"`
	IsOffDay bool      `gorm:"column:is_off_day;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 强制指定表名
func (HolidayDay) TableName() string {
	return "holiday_days"
}

// HolidayPaper 某一年抓到的公告链接，刷新时整年替换
type HolidayPaper struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Year int    `gorm:"column:year;index;not null"`
	URL  string `gorm:"column:url;type:varchar(512);not null"`
}

func (HolidayPaper) TableName() string {
	return "holiday_papers"
}
