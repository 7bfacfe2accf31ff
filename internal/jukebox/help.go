package jukebox

import "strings"

var helpPages = map[string]string{
	"1": "List of commands: 'play' to play current song | 'stop' to stop current song | 'pause' to pause current song | ",
	"2": "List of commands: 'speed' to change the player speed | 'next' to play the next song | 'select' to select a specific song | ",
	"3": "List of commands: 'info' to get information about a song | 'list' to see the list of songs | ",

	"play":  "play command: 'play' to play current song. No parameter needed.",
	"stop":  "stop command: 'stop' to stop current song. After being stopped, it can't be resumed with play, it will just restart. No parameter needed.",
	"pause": "pause command: 'pause' to pause current song. After being paused, it can be resumed with play. No parameter needed.",
	"speed": "speed command: 'speed' to change the speed of the current player (0.1 is the minimum). The parameter is a double that we will set the player speed to.",
	"next":  "next command: 'next' to play the next song. No parameter needed.",
	"info":  "info command: 'info' to get information about either the current song or other. The parameter is the id(an integer) of the song we want the info of. If there's no parameter, it gives info of the current song.",
	"list":  "list command: 'list' to get a list of all songs and their ids. No parameter needed.",
}

const (
	helpSelect  = "select command: 'select' to change the current song. The parameter is an integer that we will set the song id to."
	helpGeneral = "List of commands: Type 'help _'. Choose a page as the parameter. Pages go 1-3. For more specific help with a certain command, type 'help command', for example, 'help play' if you want help with the play command."
)

// helpText returns the help for a page number or command name. Any other
// parameter starting with 's' selects the select help.
func helpText(param string) string {
	if t, ok := helpPages[param]; ok {
		return t
	}
	if strings.HasPrefix(param, "s") {
		return helpSelect
	}
	return helpGeneral
}
