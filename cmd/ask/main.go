// Command ask runs the reply selector locally, without the HTTP server.
//
//	go run ./cmd/ask "what is binary search"
//	go run ./cmd/ask            # interactive
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cs-assistant-be/pkg/assistant"

	"github.com/fatih/color"
)

func main() {
	selector := assistant.NewSelector(assistant.Default())

	if len(os.Args) > 1 {
		answer(selector, strings.Join(os.Args[1:], " "))
		return
	}

	color.Cyan("CS Assistant - type a question, empty line to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			return
		}
		answer(selector, line)
	}
}

func answer(selector *assistant.Selector, input string) {
	m := selector.Match(input)

	label := string(m.Rule)
	if m.Key != "" {
		label += ":" + m.Key
	}

	switch m.Rule {
	case assistant.RuleAttribution, assistant.RuleTopic:
		color.Green("[%s]", label)
	case assistant.RuleFallback:
		color.Yellow("[%s]", label)
	default:
		color.Red("[%s]", label)
	}
	fmt.Println(m.Text)
	fmt.Println()
}
