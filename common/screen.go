package common

// Logical render resolution. The window scales it to fit.
const (
	BaseWidth  = 640
	BaseHeight = 360
)

// PixelsPerUnit converts world units (Y up) to screen pixels.
const PixelsPerUnit = 32
