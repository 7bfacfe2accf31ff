package jukebox

import (
	"math"
	"strconv"
	"strings"

	"github.com/chase3718/lou-jukebox/internal/buzzer"
	"github.com/chase3718/lou-jukebox/internal/melodies"
)

const (
	msgMelodyNotFound  = "Error: Melody not found"
	msgCommandNotFound = "Error: Command not found"
	msgInvalidSpeed    = "Error: Invalid speed"
)

// Command is one parsed serial command line.
type Command struct {
	Name  string
	Param string
}

// ParseCommand splits a line into a command name and an optional first
// parameter. Blank lines report false.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(strings.TrimRight(line, "\x00"))
	if len(fields) == 0 {
		return Command{}, false
	}
	c := Command{Name: fields[0]}
	if len(fields) > 1 {
		c.Param = fields[1]
	}
	return c, true
}

func (j *Jukebox) execute(line string) {
	c, ok := ParseCommand(line)
	if !ok {
		return
	}
	j.logger.Debug("jukebox: command", "command", c.Name, "param", c.Param)

	switch c.Name {
	case "play":
		j.player.SetAction(buzzer.Play)
		j.reportf("Playing: %s", j.name)
	case "stop":
		j.player.SetAction(buzzer.Stop)
		j.report("Stopped")
	case "pause":
		j.player.SetAction(buzzer.Pause)
		j.report("Paused")
	case "speed":
		s, err := strconv.ParseFloat(c.Param, 64)
		if err != nil || math.IsNaN(s) || math.IsInf(s, 0) {
			j.report(msgInvalidSpeed)
			return
		}
		j.player.SetSpeed(math.Max(s, MinSpeed))
		j.reportf("Speed: %.2f", j.player.Speed())
	case "next":
		j.nextSong()
	case "select":
		idx, ok := j.slot(c.Param)
		if !ok {
			j.report(msgMelodyNotFound)
			return
		}
		j.selectMelody(idx)
	case "info":
		if c.Param == "" {
			j.reportf("Playing: %s", j.name)
			return
		}
		idx, ok := j.slot(c.Param)
		if !ok {
			j.report(msgMelodyNotFound)
			return
		}
		j.reportf("[%d]: %s", idx, j.nameOf(idx))
	case "list":
		j.serial.SetOutData([]byte(j.listing()))
	case "help":
		j.report(helpText(c.Param))
	default:
		j.report(msgCommandNotFound)
	}
}

// slot parses a decimal library index and reports whether it names a
// non-empty slot.
func (j *Jukebox) slot(param string) (int, bool) {
	idx, err := strconv.Atoi(param)
	if err != nil || idx < 0 || idx >= melodies.LibrarySize {
		return 0, false
	}
	if j.library[idx].Empty() {
		return 0, false
	}
	return idx, true
}

func (j *Jukebox) listing() string {
	var b strings.Builder
	b.WriteString("|")
	for i := range j.library {
		b.WriteString(" [")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("]: ")
		b.WriteString(j.nameOf(i))
		b.WriteString(" |")
	}
	b.WriteString("\n")
	return b.String()
}
