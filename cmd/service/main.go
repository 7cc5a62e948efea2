// File: cmd/service/main.go
// @title        JDGK CMS API
// @version      1.0
// @description  JDGK 網站內容管理後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"os"

	_ "jdgk-cms/docs" // 引入 swag 產出的 docs
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
