package cmd

import (
	"bufio"
	"os"
)

// history is a minimal on-disk line history: runREPL appends each accepted
// form to the file. load can read the recorded lines back, but the REPL
// does not call it, so earlier sessions' lines are not recalled.
type history struct {
	path string
	file *os.File
}

func openHistory(path string) *history {
	if path == "" {
		return &history{}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &history{}
	}
	return &history{path: path, file: f}
}

// load reads every previously recorded line, oldest first.
func (h *history) load() []string {
	if h.path == "" {
		return nil
	}
	f, err := os.Open(h.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// append records line as accepted input.
func (h *history) append(line string) {
	if h.file == nil {
		return
	}
	h.file.WriteString(line + "\n")
}

func (h *history) close() {
	if h.file != nil {
		h.file.Close()
	}
}
