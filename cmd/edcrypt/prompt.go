package main

import (
	"bufio"
	"fmt"
	"os"
)

// promptPassword reads a single line from stdin as the passphrase. None of
// this toolkit's pack repos pull in a terminal-echo-suppression library
// (e.g. golang.org/x/term), so this deliberately stays on bufio/stdlib
// rather than introduce an ungrounded dependency for it.
func promptPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return []byte(trimNewline(line)), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
