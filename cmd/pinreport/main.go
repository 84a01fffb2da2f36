package main

import "github.com/OpenTraceLab/pinreport/cmd/pinreport/cmd"

func main() {
	cmd.Execute()
}
