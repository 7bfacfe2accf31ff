// Package melodies holds the static melody table played by the jukebox.
package melodies

// LibrarySize is the number of melody slots in the jukebox.
const LibrarySize = 11

// Note is one tone of a melody. A zero Frequency is a rest.
type Note struct {
	Frequency float64 // Hz
	Duration  uint32  // ms at speed 1.0
}

// Melody is a named, immutable sequence of notes.
type Melody struct {
	Name  string
	Notes []Note
}

// Len returns the number of notes. A nil melody has length 0.
func (m *Melody) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Notes)
}

// Empty reports whether the melody has no notes.
func (m *Melody) Empty() bool {
	return m.Len() == 0
}

// Library returns the default slot table. Slot 0 is the startup scale and
// the last slot is the shutdown outro. The pointers refer to package-level
// data and must not be modified.
func Library() [LibrarySize]*Melody {
	return [LibrarySize]*Melody{
		&scale,
		&tetris,
		&happyBirthday,
		&marchOfTheToreadors,
		&carelessWhispers,
		&zeldaMain,
		&imperialMarch,
		&marioMain,
		&pokemonMain,
		&halloweenTheme,
		&outro,
	}
}

// Scale returns the startup melody.
func Scale() *Melody { return &scale }

// Outro returns the shutdown melody.
func Outro() *Melody { return &outro }
