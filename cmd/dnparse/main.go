package main

import (
	"context"
	"fmt"
	"os"

	"github.com/KimNorgaard/go-rfc2253/internal/cli"
)

func main() {
	if err := cli.New().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
