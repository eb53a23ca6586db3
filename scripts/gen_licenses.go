// 批量生成激活码脚本
//
// 用法: go run scripts/gen_licenses.go -count 100 -days 365 -notes "首发渠道"

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/service"
	"quizkey_backend/pkg/database"
	"quizkey_backend/pkg/logger"
)

func main() {
	count := flag.Int("count", 10, "生成数量")
	days := flag.Int("days", 0, "有效天数，0 表示永久")
	maxDevices := flag.Int("max-devices", 3, "允许的设备数")
	notes := flag.String("notes", "", "备注")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var expiresAt *time.Time
	if *days > 0 {
		t := time.Now().AddDate(0, 0, *days)
		expiresAt = &t
	}

	licenses := service.NewLicenseService(repository.NewLicenseRepository(db), nil, cfg)

	for i := 0; i < *count; i++ {
		license, err := licenses.Create("", expiresAt, *maxDevices, *notes, "gen_licenses")
		if err != nil {
			log.Fatalf("生成失败: %v", err)
		}
		fmt.Println(license.Key)
	}
}
