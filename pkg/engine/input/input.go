// Package input reads single keystrokes from the terminal, including arrow
// key escape sequences, and maps them to game commands.
package input

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Command is a high-level game action decoded from a keystroke
type Command int

// Commands
const (
	CmdNone Command = iota
	CmdMoveNorth
	CmdMoveSouth
	CmdMoveEast
	CmdMoveWest
	CmdAdvance // dismiss the current dialogue line
	CmdDescend // take the exit
	CmdHelp
	CmdQuit
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readArrowKey consumes the rest of an escape sequence after ESC and returns
// the decoded key name, or empty for sequences that are not arrows.
func readArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// CSI (ESC [) and SS3 (ESC O) both carry arrows as the third byte
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKey blocks for one keystroke in raw mode and returns its name: a
// single printable character, or "arrow_up" style names for arrows.
// Ctrl+C exits the process.
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}

	switch {
	case b == 0x1b:
		return readArrowKey()
	case b == 3:
		term.Restore(int(os.Stdin.Fd()), oldState)
		fmt.Println()
		os.Exit(0)
	case b == '\n' || b == '\r':
		return "enter"
	case b == ' ':
		return "space"
	case b >= 32 && b < 127:
		return string(b)
	}
	return ""
}

// MapToCommand translates a key name into a game command. vimKeys enables
// the hjkl movement cluster alongside arrows.
func MapToCommand(key string, vimKeys bool) Command {
	switch key {
	case "arrow_up", "w":
		return CmdMoveNorth
	case "arrow_down", "s":
		return CmdMoveSouth
	case "arrow_right", "d":
		return CmdMoveEast
	case "arrow_left", "a":
		return CmdMoveWest
	case "space", "enter":
		return CmdAdvance
	case "e", ">":
		return CmdDescend
	case "?":
		return CmdHelp
	case "q":
		return CmdQuit
	}

	if vimKeys {
		switch key {
		case "k":
			return CmdMoveNorth
		case "j":
			return CmdMoveSouth
		case "l":
			return CmdMoveEast
		case "h":
			return CmdMoveWest
		}
	}
	return CmdNone
}
