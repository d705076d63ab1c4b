package main

import "qost_backend/internal/app"

func main() {
	app.Run()
}
