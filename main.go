package main

import (
	"github.com/hance08/caja/cmd"
	"github.com/hance08/caja/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
