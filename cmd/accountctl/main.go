package main

import "github.com/nhce-portal/accounts/internal/cli"

func main() {
	cli.Execute()
}
