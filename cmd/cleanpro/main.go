package main

import (
	"fmt"
	"os"
)

// @title           Avatar CleanPro API
// @version         1.0
// @description     Service catalog and contact form API behind the Avatar CleanPro website.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
