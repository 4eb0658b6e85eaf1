package main

import "mbti-chat/internal/cli"

func main() {
	cli.Execute()
}
