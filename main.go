package main

import "github.com/user/auditfuse/cmd"

func main() {
	cmd.Execute()
}
