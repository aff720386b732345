package main

import (
	"github.com/davidrhall/conquest-go/internal/adapters/cli"
	"github.com/davidrhall/conquest-go/internal/adapters/metrics"
)

func main() {
	metrics.InitRegistry()
	cli.Execute()
}
