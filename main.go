package main

import "upload-gateway/cmd"

func main() {
	cmd.Execute()
}
