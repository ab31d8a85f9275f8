package main

import "github.com/ailab/timesheetgen/cmd"

func main() {
	cmd.Execute()
}
