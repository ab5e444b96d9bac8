package config

const (
	WindowWidth  = 720
	WindowHeight = 720

	DefaultTPS = 60

	// Pizza geometry, in screen pixels
	PizzaRadius = 300
	CrustWidth  = 22
	InnerRadius = 18
	SliceGap    = 3

	// Flip rendering
	BackFaceShade = 0.55
	MinFlipScale  = 0.04

	// Flip chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 660
	ChimeStep       = 1.0594630943592953 // one semitone per slice
	ChimeDecay      = 18.0
	ChimeDuration   = 0.18
	ChimeVolume     = 0.2
	ChimeMaxVoices  = 16
)
