package parameter

// Star population
const (
	// StarCount is the default population per generation
	StarCount = 400

	// StarSpread is the radial scatter as a fraction of min(width, height)
	StarSpread = 0.8

	// StarRadiusMin/StarRadiusRange define core radius in pixels: min + rand*range
	StarRadiusMin   = 0.25
	StarRadiusRange = 0.75

	// StarBrightnessMin/StarBrightnessRange define base brightness: min + rand*range
	StarBrightnessMin   = 0.5
	StarBrightnessRange = 0.5

	// StarBlinkSpeedMin/StarBlinkSpeedRange are angular speeds in radians per second
	StarBlinkSpeedMin   = 1.0
	StarBlinkSpeedRange = 3.0

	// StarHueMin/StarHueRange select blue-white hues in degrees
	StarHueMin   = 220.0
	StarHueRange = 40.0

	// StarLightnessMin/StarLightnessRange in HSL lightness [0,1]
	StarLightnessMin   = 0.70
	StarLightnessRange = 0.30
)
