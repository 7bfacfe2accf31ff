package melodies

var happyBirthday = Melody{
	Name:  "Happy Birthday",
	Notes: []Note{
		{Silence, 100}, {C4, 300}, {C4, 100}, {D4, 400}, {C4, 400}, {F4, 400},
		{E4, 800}, {C4, 300}, {C4, 100}, {D4, 400}, {C4, 400}, {G4, 400},
		{F4, 800}, {C4, 300}, {C4, 100}, {C5, 400}, {A4, 400}, {F4, 400},
		{E4, 400}, {D4, 400}, {As4, 300}, {As4, 100}, {A4, 400}, {F4, 400},
		{G4, 400}, {F4, 800},
	},
}

var tetris = Melody{
	Name:  "Tetris",
	Notes: []Note{
		{Silence, 100}, {E5, 400}, {B4, 200}, {C5, 200}, {D5, 400}, {C5, 200},
		{B4, 200}, {A4, 400}, {A4, 200}, {C5, 200}, {E5, 400}, {D5, 200},
		{C5, 200}, {B4, 600}, {C5, 200}, {D5, 400}, {E5, 400}, {C5, 400},
		{A4, 400}, {A4, 200}, {A4, 200}, {B4, 200}, {C5, 200}, {D5, 600},
		{F4, 200}, {A5, 400}, {G5, 200}, {F5, 200}, {E5, 600}, {C5, 200},
		{E5, 400}, {D5, 200}, {C5, 200}, {B4, 400}, {B4, 200}, {A4, 200},
		{D5, 400}, {E5, 400}, {C5, 400}, {A4, 400}, {A4, 400},
	},
}

var scale = Melody{
	Name:  "Scale",
	Notes: []Note{
		{C4, 250}, {D4, 250}, {E4, 250}, {F4, 250}, {G4, 250}, {A4, 250},
		{B4, 250}, {C5, 250},
	},
}

var outro = Melody{
	Name:  "Outro",
	Notes: []Note{
		{Silence, 100}, {B4, 200}, {Silence, 50}, {F5, 150}, {Silence, 200}, {F5, 200},
		{F5, 266}, {E5, 266}, {D5, 267}, {C5, 200}, {E4, 200}, {G3, 200},
		{E4, 200}, {C4, 785}, {Silence, 15},
	},
}

var marchOfTheToreadors = Melody{
	Name:  "March of the Toreadors",
	Notes: []Note{
		{Silence, 100}, {C5, 400}, {D5, 300}, {C5, 100}, {A4, 150}, {Silence, 100},
		{A4, 150}, {Silence, 100}, {A4, 300}, {G4, 100}, {A4, 300}, {As4, 100},
		{A4, 800}, {As4, 400}, {G4, 300}, {C5, 100}, {A4, 800}, {F4, 400},
		{D4, 300}, {G4, 100}, {C4, 800},
	},
}

var carelessWhispers = Melody{
	Name:  "Careless Whispers",
	Notes: []Note{
		{Silence, 100}, {Cs5, 280}, {Cs6, 280}, {B5, 140}, {Fs5, 280}, {D5, 280},
		{Cs6, 420}, {B5, 140}, {Fs5, 280}, {D5, 420}, {A5, 280}, {G5, 140},
		{D5, 280}, {B4, 280}, {A5, 420}, {G5, 140}, {D5, 700}, {G5, 280},
		{Fs5, 140}, {D5, 280}, {B4, 280}, {G4, 1120}, {A4, 140}, {Fs4, 280},
		{G4, 280}, {A4, 280}, {B4, 280}, {Cs5, 280}, {D5, 280}, {E5, 280},
		{Fs5, 280}, {Cs6, 280}, {B5, 140}, {Fs5, 280}, {D5, 280}, {C6, 420},
		{B5, 140}, {Fs5, 280}, {D5, 420}, {A5, 280}, {G5, 140}, {D5, 280},
		{B4, 280}, {A5, 420}, {G5, 140}, {D5, 700}, {G5, 280}, {Fs5, 140},
		{D5, 280}, {B4, 280}, {G4, 1120}, {A4, 140}, {Fs4, 280}, {G4, 280},
		{A4, 280}, {B4, 280}, {Cs5, 280}, {D5, 280}, {E5, 280}, {Fs5, 280},
	},
}

var zeldaMain = Melody{
	Name:  "The Legend of Zelda Main Theme",
	Notes: []Note{
		{Silence, 100}, {A4, 800}, {Silence, 267}, {A4, 133}, {A4, 133}, {A4, 133},
		{A4, 134}, {A4, 267}, {G4, 133}, {A4, 400}, {Silence, 267}, {A4, 133},
		{A4, 133}, {A4, 133}, {A4, 134}, {A4, 267}, {G4, 133}, {A4, 400},
		{Silence, 267}, {A4, 133}, {A4, 133}, {A4, 133}, {A4, 134}, {A4, 200},
		{E4, 100}, {E4, 100}, {E4, 200}, {E4, 100}, {E4, 100}, {E4, 200},
		{E4, 100}, {E4, 100}, {E4, 200}, {E4, 200}, {A4, 400}, {E4, 600},
		{A4, 200}, {A4, 100}, {B4, 100}, {Cs5, 100}, {D5, 100}, {E5, 800},
		{Silence, 200}, {E5, 200}, {E5, 133}, {F5, 133}, {G5, 134}, {A5, 800},
		{Silence, 200}, {A5, 200}, {A5, 133}, {G5, 133}, {F5, 134}, {G5, 300},
		{F5, 100}, {E5, 800}, {E5, 400}, {D5, 200}, {D5, 100}, {E5, 100},
		{F5, 800}, {E5, 200}, {D5, 200}, {C5, 200}, {C5, 100}, {D5, 100},
		{E5, 800}, {D5, 200}, {C5, 200}, {B4, 200}, {B4, 100}, {Cs5, 100},
		{Ds5, 800}, {Fs5, 400}, {E5, 200}, {E4, 100}, {E4, 100}, {E4, 200},
		{E4, 100}, {E4, 100}, {E4, 200}, {E4, 100}, {E4, 100}, {E4, 200},
		{E4, 200},
	},
}

var imperialMarch = Melody{
	Name:  "Imperial March",
	Notes: []Note{
		{Silence, 100}, {G4, 400}, {G4, 400}, {G4, 400}, {Ds4, 300}, {As4, 100},
		{G4, 400}, {Ds4, 300}, {As4, 100}, {G4, 800}, {D5, 400}, {D5, 400},
		{D5, 400}, {Ds5, 300}, {As4, 100}, {Fs4, 400}, {Ds4, 300}, {As4, 100},
		{G4, 800}, {G5, 400}, {G4, 300}, {G4, 100}, {G5, 400}, {Fs5, 300},
		{F5, 100}, {E5, 100}, {Ds5, 100}, {E5, 200}, {Silence, 200}, {Gs4, 200},
		{Cs5, 400}, {C5, 300}, {B4, 100}, {As4, 100}, {A4, 100}, {As4, 200},
		{Silence, 200}, {Ds4, 200}, {Fs4, 400}, {Ds4, 300}, {Fs4, 100}, {As4, 400},
		{G4, 300}, {As4, 100}, {D5, 800}, {G5, 400}, {G4, 300}, {G4, 100},
		{G5, 400}, {Fs5, 300}, {F5, 100}, {E5, 100}, {Ds5, 100}, {E5, 200},
		{Silence, 200}, {Gs4, 200}, {Cs5, 400}, {C5, 300}, {B4, 100}, {As4, 100},
		{A4, 100}, {As4, 200}, {Silence, 200}, {Ds4, 200}, {Fs4, 400}, {Ds4, 300},
		{As4, 100}, {G4, 400}, {Ds4, 300}, {As4, 100}, {G4, 800},
	},
}

var marioMain = Melody{
	Name:  "Mario Bros Main Theme",
	Notes: []Note{
		{Silence, 100}, {E5, 150}, {E5, 150}, {Silence, 150}, {E5, 150}, {Silence, 150},
		{C5, 150}, {E5, 300}, {G5, 300}, {Silence, 300}, {G4, 300}, {Silence, 300},
		{C5, 300}, {Silence, 150}, {G4, 300}, {Silence, 150}, {E4, 300}, {Silence, 150},
		{A4, 300}, {B4, 300}, {As4, 150}, {A4, 300}, {G4, 200}, {E5, 200},
		{G5, 200}, {A5, 300}, {F5, 150}, {G5, 150}, {Silence, 150}, {E5, 300},
		{C5, 150}, {D5, 150}, {B4, 300}, {Silence, 150}, {C5, 300}, {Silence, 150},
		{G4, 300}, {Silence, 150}, {E4, 300}, {Silence, 150}, {A4, 300}, {B4, 300},
		{As4, 150}, {A4, 300}, {G4, 200}, {E5, 200}, {G5, 200}, {A5, 300},
		{F5, 150}, {G5, 150}, {Silence, 150}, {E5, 300}, {C5, 150}, {D5, 150},
		{B4, 300}, {Silence, 150}, {Silence, 300}, {G5, 150}, {Fs5, 150}, {F5, 150},
		{Ds5, 300}, {E5, 150}, {Silence, 150}, {Gs4, 150}, {A4, 150}, {C5, 150},
		{Silence, 150}, {A4, 150}, {C5, 150}, {D5, 150}, {Silence, 300}, {G5, 150},
		{Fs5, 150}, {F5, 150}, {Ds5, 300}, {E5, 150}, {Silence, 150}, {C6, 300},
		{C6, 150}, {C6, 300}, {Silence, 300}, {Silence, 300}, {G5, 150}, {Fs5, 150},
		{F5, 150}, {Ds5, 300}, {E5, 150}, {Silence, 150}, {Gs4, 150}, {A4, 150},
		{C5, 150}, {Silence, 150}, {A4, 150}, {C5, 150}, {D5, 150}, {Silence, 300},
		{Ds5, 300}, {Silence, 150}, {D5, 300}, {Silence, 150}, {C5, 300}, {Silence, 900},
		{Silence, 300}, {G5, 150}, {Fs5, 150}, {F5, 150}, {Ds5, 300}, {E5, 150},
		{Silence, 150}, {Gs4, 150}, {A4, 150}, {C5, 150}, {Silence, 150}, {A4, 150},
		{C5, 150}, {D5, 150}, {Silence, 300}, {G5, 150}, {Fs5, 150}, {F5, 150},
		{Ds5, 300}, {E5, 150}, {Silence, 150}, {C6, 300}, {C6, 150}, {C6, 300},
		{Silence, 300}, {Silence, 300}, {G5, 150}, {Fs5, 150}, {F5, 150}, {Ds5, 300},
		{E5, 150}, {Silence, 150}, {Gs4, 150}, {A4, 150}, {C5, 150}, {Silence, 150},
		{A4, 150}, {C5, 150}, {D5, 150}, {Silence, 300}, {Ds5, 300}, {Silence, 150},
		{D5, 300}, {Silence, 150}, {C5, 300}, {Silence, 900}, {C5, 150}, {C5, 150},
		{Silence, 150}, {C5, 150}, {Silence, 150}, {C5, 150}, {D5, 300}, {E5, 150},
		{C5, 150}, {Silence, 150}, {A4, 150}, {G4, 600}, {C5, 150}, {C5, 150},
		{Silence, 150}, {C5, 150}, {Silence, 150}, {C5, 150}, {D5, 150}, {E5, 150},
		{Silence, 1200}, {C5, 150}, {C5, 150}, {Silence, 150}, {C5, 150}, {Silence, 150},
		{C5, 150}, {D5, 300}, {E5, 150}, {C5, 150}, {Silence, 150}, {A4, 150},
		{G4, 600}, {E5, 150}, {E5, 150}, {Silence, 150}, {E5, 150}, {Silence, 150},
		{C5, 150}, {E5, 300}, {G5, 300}, {Silence, 300}, {G4, 300}, {Silence, 300},
	},
}

var pokemonMain = Melody{
	Name:  "Pokemon Main",
	Notes: []Note{
		{Silence, 100}, {G4, 400}, {G4, 400}, {Silence, 200}, {G4, 100}, {G4, 100},
		{G4, 400}, {G4, 400}, {G4, 400}, {F4, 133}, {F4, 133}, {F4, 134},
		{F4, 133}, {F4, 133}, {Fs4, 134}, {G4, 600}, {B4, 200}, {D5, 800},
		{Silence, 400}, {A4, 400}, {F5, 600}, {E5, 100}, {Ds5, 100}, {D5, 800},
		{F4, 600}, {E4, 100}, {Ds4, 100}, {D4, 800}, {C4, 266}, {B3, 267},
		{C4, 267}, {G4, 600}, {B4, 200}, {D5, 800}, {Silence, 800}, {C5, 266},
		{A4, 267}, {C5, 267}, {D5, 800}, {F4, 266}, {E4, 267}, {C4, 267},
		{D4, 1000}, {B3, 200}, {C4, 200}, {D4, 200}, {G4, 600}, {B4, 200},
		{D5, 800},
	},
}

var halloweenTheme = Melody{
	Name:  "Halloween Theme",
	Notes: []Note{
		{Silence, 100}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200},
		{Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {D6, 200}, {Fs5, 200}, {Cs6, 200},
		{Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200},
		{Fs5, 200}, {D6, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200},
		{Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {D6, 200},
		{Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200},
		{Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {D6, 200}, {Fs5, 200}, {Cs6, 200},
		{Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200},
		{Fs5, 200}, {D6, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200},
		{Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {D6, 200},
		{Fs5, 200}, {C6, 200}, {F5, 200}, {F5, 200}, {C6, 200}, {F5, 200},
		{F5, 200}, {C6, 200}, {F5, 200}, {Cs6, 200}, {F5, 200}, {C6, 200},
		{F5, 200}, {F5, 200}, {C6, 200}, {F5, 200}, {F5, 200}, {C6, 200},
		{F5, 200}, {Cs6, 200}, {F5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200},
		{Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {D6, 200},
		{Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {Fs5, 200}, {Cs6, 200}, {Fs5, 200},
		{Fs5, 200}, {Cs6, 200}, {Fs5, 200}, {D6, 200}, {Fs5, 200}, {C6, 200},
		{F5, 200}, {F5, 200}, {C6, 200}, {F5, 200}, {F5, 200}, {C6, 200},
		{F5, 200}, {Cs6, 200}, {F5, 200}, {C6, 200}, {F5, 200}, {F5, 200},
		{C6, 200}, {F5, 200}, {F5, 200}, {C6, 200}, {F5, 200}, {Cs6, 200},
		{F5, 200}, {B5, 200}, {E5, 200}, {E5, 200}, {B5, 200}, {E5, 200},
		{E5, 200}, {B5, 200}, {E5, 200}, {C6, 200}, {E5, 200}, {B5, 200},
		{E5, 200}, {E5, 200}, {B5, 200}, {E5, 200}, {E5, 200}, {B5, 200},
		{E5, 200}, {C6, 200}, {E5, 200}, {As5, 200}, {Ds5, 200}, {Ds5, 200},
		{As5, 200}, {Ds5, 200}, {Ds5, 200}, {As5, 200}, {Ds5, 200}, {B5, 200},
		{Ds5, 200}, {As5, 200}, {Ds5, 200}, {Ds5, 200}, {As5, 200}, {Ds5, 200},
		{Ds5, 200}, {As5, 200}, {Ds5, 200}, {B5, 200}, {Ds5, 200}, {B5, 200},
		{E5, 200}, {E5, 200}, {B5, 200}, {E5, 200}, {E5, 200}, {B5, 200},
		{E5, 200}, {C6, 200}, {E5, 200}, {B5, 200}, {E5, 200}, {E5, 200},
		{B5, 200}, {E5, 200}, {E5, 200}, {B5, 200}, {E5, 200}, {C6, 200},
		{E5, 200}, {As5, 200}, {Ds5, 200}, {Ds5, 200}, {As5, 200}, {Ds5, 200},
		{Ds5, 200}, {As5, 200}, {Ds5, 200}, {B5, 200}, {Ds5, 200}, {As5, 200},
		{Ds5, 200}, {Ds5, 200}, {As5, 200}, {Ds5, 200}, {Ds5, 200}, {As5, 200},
		{Ds5, 200}, {B5, 200}, {Ds5, 200}, {Fs5, 200}, {B5, 200}, {B5, 200},
		{Fs5, 200}, {B5, 200}, {B5, 200}, {Fs5, 200}, {B5, 200}, {G5, 200},
		{B5, 200}, {Fs5, 200}, {B5, 200}, {B5, 200}, {Fs5, 200}, {B5, 200},
		{B5, 200}, {Fs5, 200}, {B5, 200}, {G5, 200}, {B5, 200}, {Fs5, 200},
		{B5, 200}, {B5, 200}, {Fs5, 200}, {B5, 200}, {B5, 200}, {Fs5, 200},
		{B5, 200}, {G5, 200}, {B5, 200}, {Fs5, 200}, {B5, 200}, {B5, 200},
		{Fs5, 200}, {B5, 200}, {B5, 200}, {Fs5, 200}, {B5, 200}, {G5, 200},
		{B5, 200},
	},
}
