package main

import (
	"github.com/almglabs/almg/internal/cli"
	"github.com/almglabs/almg/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger()
}

func main() {
	cli.Execute()
}
