package frame

// Recognized frame property keys. Anything else in a Config is ignored.
const (
	KeyImageBoxTop    = "image_box_top"
	KeyImageBoxLeft   = "image_box_left"
	KeyImageBoxWidth  = "image_box_width"
	KeyImageBoxHeight = "image_box_height"

	KeyImageFrameTop    = "image_frame_top"
	KeyImageFrameLeft   = "image_frame_left"
	KeyImageFrameWidth  = "image_frame_width"
	KeyImageFrameHeight = "image_frame_height"

	KeyScoreColor      = "score_color"
	KeyScoreFontSize   = "score_font_size"
	KeyScoreFontFamily = "score_font_family"

	KeyNameColor      = "name_color"
	KeyNameFontSize   = "name_font_size"
	KeyNameFontFamily = "name_font_family"
)

// styleVars is the fixed table mapping every recognized property to the
// CSS custom property the card markup consumes.
var styleVars = map[string]string{
	KeyImageBoxTop:    "--image-box-top",
	KeyImageBoxLeft:   "--image-box-left",
	KeyImageBoxWidth:  "--image-box-width",
	KeyImageBoxHeight: "--image-box-height",

	KeyImageFrameTop:    "--image-frame-top",
	KeyImageFrameLeft:   "--image-frame-left",
	KeyImageFrameWidth:  "--image-frame-width",
	KeyImageFrameHeight: "--image-frame-height",

	KeyScoreColor:      "--score-color",
	KeyScoreFontSize:   "--score-font-size",
	KeyScoreFontFamily: "--score-font-family",

	KeyNameColor:      "--name-color",
	KeyNameFontSize:   "--name-font-size",
	KeyNameFontFamily: "--name-font-family",
}

// builtinDefaults covers the text styling keys only. Image box and image
// frame geometry has no built-in value: a frame that doesn't position its
// image simply emits no geometry variables.
var builtinDefaults = map[string]string{
	KeyScoreColor:      "#ffffff",
	KeyScoreFontSize:   "2.4rem",
	KeyScoreFontFamily: "'Oswald', sans-serif",

	KeyNameColor:      "#ffffff",
	KeyNameFontSize:   "1.2rem",
	KeyNameFontFamily: "'Oswald', sans-serif",
}

// frameInheritsBox lets image-frame geometry follow the image box on any
// axis the frame positions the box but not the frame overlay itself.
var frameInheritsBox = map[string]string{
	KeyImageFrameTop:    KeyImageBoxTop,
	KeyImageFrameLeft:   KeyImageBoxLeft,
	KeyImageFrameWidth:  KeyImageBoxWidth,
	KeyImageFrameHeight: KeyImageBoxHeight,
}

// Resolve computes the effective style variables for the named frame.
//
// The frame is looked up in lib, falling back to the "default" entry and
// then to an empty configuration. Each recognized property resolves to the
// frame's own value, an inherited image-box value (frame overlay geometry
// only) or the built-in default, in that order; properties with no value
// are left out of the result. Resolve is pure: same inputs, same output,
// and lib is never mutated.
func Resolve(lib Library, name string) map[string]string {
	cfg, ok := lib[name]
	if !ok {
		cfg = lib[DefaultName]
	}

	resolved := make(map[string]string, len(styleVars))
	for key, cssVar := range styleVars {
		value := cfg[key]
		if value == "" {
			if boxKey, inherits := frameInheritsBox[key]; inherits {
				value = cfg[boxKey]
			}
		}
		if value == "" {
			value = builtinDefaults[key]
		}
		if value != "" {
			resolved[cssVar] = value
		}
	}
	return resolved
}
