package main

import (
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledger/cmd/erpctl/cmd"
)

func main() {
	_ = godotenv.Load()

	cmd.Execute()
}
