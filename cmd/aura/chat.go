package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"nickandperla.net/aurascript/internal/console"
	"nickandperla.net/aurascript/internal/provider"
	"nickandperla.net/aurascript/pkg/aura"
)

const chatPrompt = "you> "

// runChat sends each input line to the provider named by key and prints
// the reply. Provider errors are reported and the session goes on; it ends
// at EOF or on "exit" or "quit".
func runChat(rt *aura.Runtime, key string, in io.Reader, con *console.Console, interactive bool) error {
	if !rt.HasProvider(key) {
		return &provider.UnknownProviderError{Key: key}
	}

	con.Infof("Chatting with %s. Type 'exit' or 'quit' to leave.", strings.ToLower(key))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		if interactive {
			fmt.Fprint(con.Out, chatPrompt)
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Fprintln(con.Out)
			}
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			con.Infof("Goodbye.")
			return nil
		}

		reply, err := rt.Generate(key, line)
		if err != nil {
			con.Error(err)
			continue
		}
		con.AI(reply)
	}
}
