package sway

import colorful "github.com/lucasb-eyer/go-colorful"

// Colors blend in RGB space by default. Register a different BlendFunc for
// colorful.Color to interpolate in a perceptual space instead, e.g.:
//
//	sway.RegisterLerp(func(a, b colorful.Color, t float64) colorful.Color {
//		return a.BlendLuv(b, t)
//	})
func init() {
	RegisterLerp(func(a, b colorful.Color, t float64) colorful.Color {
		return a.BlendRgb(b, t)
	})
}
