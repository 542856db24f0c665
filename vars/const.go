package vars

import (
	"os"
)

// GetEnv 获取环境变量，如果不存在则返回默认值
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

const (
	// 国务院公告检索入口
	SearchURL = "http://sousuo.gov.cn/s.htm"

	// 检索固定参数
	SearchKeyword = "假期"
	SearchCode    = "国办发明电"
	SearchOrg     = "国务院办公厅"
)

// 环境变量配置（支持 Docker 部署）
var (
	// HTTP
	ListenAddr = GetEnv("LISTEN_ADDR", ":8081")

	// PG
	PGUSER = GetEnv("PGUSER", "root")
	PGPWD  = GetEnv("PGPWD", "root")
	PGDB   = GetEnv("PGDB", "holidayDB")
	PGHOST = GetEnv("PGHOST", "localhost")
	PGPORT = GetEnv("PGPORT", "5432")
)

// PaperExclude 检索结果里需要剔除的链接（同一个关键词会搜出不相关年份的公告）
var PaperExclude = []string{
	"http://www.gov.cn/zhengce/content/2014-09/29/content_9102.htm",
	"http://www.gov.cn/zhengce/content/2015-02/09/content_9466.htm",
}

// PaperInclude 检索不到、需要手动补充的链接
var PaperInclude = map[int][]string{
	2015: {"http://www.gov.cn/zhengce/content/2015-05/13/content_9742.htm"},
}
