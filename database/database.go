package database

import (
	"fmt"
	"log"

	"incomebook/config"
	"incomebook/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.UserPreference{},
		&models.Source{},
		&models.Income{},
	); err != nil {
		return err
	}

	// 初始化默认收入来源（仅当表为空时）
	var srcCount int64
	DB.Model(&models.Source{}).Count(&srcCount)
	if srcCount == 0 {
		defaultSources := []struct {
			Name string
			Sort int
		}{
			{"工资", 10},
			{"奖金", 20},
			{"理财", 30},
			{"兼职", 40},
			{"礼金", 50},
			{"其他", 60},
		}
		var sources []models.Source
		for _, item := range defaultSources {
			sources = append(sources, models.Source{
				Name: item.Name,
				Sort: item.Sort,
			})
		}
		if len(sources) > 0 {
			_ = DB.Create(&sources).Error
		}
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
