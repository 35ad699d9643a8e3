package main

import (
	"arcade_backend/internal/app"
	"fmt"
	"os"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
