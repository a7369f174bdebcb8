package main

import (
	"context"

	"github.com/faizmokh/harian/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
