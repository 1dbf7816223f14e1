package chart

import "image/color"

// Dark-theme colors shared by the built-in charts.
var (
	ColorBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	ColorGrid       = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	ColorFrame      = color.RGBA{R: 96, G: 96, B: 104, A: 255}
	ColorText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	ColorBlue       = color.RGBA{R: 0x1A, G: 0x80, B: 0xBB, A: 255}
	ColorRed        = color.RGBA{R: 0xA0, G: 0x00, B: 0x00, A: 255}
)
