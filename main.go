package main

import "github.com/osama-ata/structural-analysis/cmd"

func main() {
	cmd.Execute()
}
