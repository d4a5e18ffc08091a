package main

import (
	"log"

	"taskboard/internal/app"
)

// @title                       Taskboard API
// @version                     1.0
// @description                 Team task tracker: tasks, assignees and admin-managed accounts.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
