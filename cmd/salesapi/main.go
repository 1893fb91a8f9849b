package main

import "github.com/salesdesk/sales-api/cmd/salesapi/cmd"

func main() {
	cmd.Execute()
}
