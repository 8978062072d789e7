// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package main

import (
	"fmt"
	"io"
)

const helpText = `AuraScript is a small language for scripting AI assistant tasks.

Statements (each ends with ';'):
  let <name> = <value>;
    Bind a value to a variable.
    let greeting = "Hello";
    let notes = Read file "notes.txt";
    let answer = Generate content from "openai" with prompt "What is Go?";

  Print <value>;
    Write a value to the console.
    Print greeting;
    Print "written as is";

  // starts a comment that runs to the end of the line.

Providers for Generate content:
  "openai"   OpenAI chat completions (OPENAI_API_KEY)
  "ollama"   local Ollama server
  "gemini"   Google Gemini (GEMINI_API_KEY)

Commands:
  aura                      run the built-in default script
  aura -f script.aura       run a script file (-f - reads stdin)
  aura -e 'Print "hi";'     run a source string
  aura prompt <provider>    chat with a provider; type 'exit' or 'quit' to leave
  aura history [-n N]       show the latest journaled generations
  aura config               show the effective provider configuration
  aura help                 show this help
`

func printHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}
