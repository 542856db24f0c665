package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"holiday-cn/api/handler"
	"holiday-cn/api/router"
	"holiday-cn/job"
	"holiday-cn/logic/fetch"
	"holiday-cn/service"
	"holiday-cn/storage/postgres"
	"holiday-cn/vars"
)

func main() {
	// 1. 初始化 DB
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		vars.PGHOST, vars.PGUSER, vars.PGPWD, vars.PGDB, vars.PGPORT)
	db, err := postgres.InitDB(dsn)
	if err != nil {
		panic(err)
	}

	// 2. 初始化存储和抓取客户端
	repo := postgres.NewHolidayRepo(db)
	fetcher := fetch.NewClient()

	// 3. 初始化 Service (业务层)
	holidaySvc := service.NewHolidayService(repo, fetcher)

	// 启动定时任务
	job.StartCronJob(holidaySvc)

	// 4. 初始化 Handler (API 层)
	holidayHandler := handler.NewHolidayHandler(holidaySvc)

	// 5. 启动 Web Server
	r := gin.Default()
	router.RegisterRoutes(r, holidayHandler)

	log.Println("Server running on", vars.ListenAddr)
	r.Run(vars.ListenAddr)
}
