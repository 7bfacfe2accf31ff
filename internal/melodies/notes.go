package melodies

// Equal-tempered note frequencies in Hz, A4 = 440. The "s" suffix is sharp.
const (
	Silence = 0.0

	G3  = 195.9977
	B3  = 246.9417
	C4  = 261.6256
	D4  = 293.6648
	Ds4 = 311.1270
	E4  = 329.6276
	F4  = 349.2282
	Fs4 = 369.9944
	G4  = 391.9954
	Gs4 = 415.3047
	A4  = 440.0000
	As4 = 466.1638
	B4  = 493.8833
	C5  = 523.2511
	Cs5 = 554.3653
	D5  = 587.3295
	Ds5 = 622.2540
	E5  = 659.2551
	F5  = 698.4565
	Fs5 = 739.9888
	G5  = 783.9909
	A5  = 880.0000
	As5 = 932.3275
	B5  = 987.7666
	C6  = 1046.5023
	Cs6 = 1108.7305
	D6  = 1174.6591
)
