package browser

// Extraction presets. A preset expands to a fixed bundle of extraction
// options; it overrides only the fields it names and passes every other
// caller-supplied field through untouched.
const (
	PresetFull      = "full"
	PresetMinimal   = "minimal"
	PresetStructure = "structure"
	PresetContent   = "content"
)

// presetOverride is one row of the preset precedence table: the fields a
// preset forces. Fields not represented here are never touched by preset
// resolution.
type presetOverride struct {
	excludeTags   []string
	stripComments bool // force IncludeComments=false
}

var presetOverrides = map[string]presetOverride{
	PresetMinimal: {
		excludeTags:   []string{"script", "style", "noscript"},
		stripComments: true,
	},
	PresetStructure: {
		excludeTags: []string{"script", "style"},
	},
	PresetContent: {
		excludeTags: []string{"script", "style", "meta", "link"},
	},
}

// ResolvePreset expands opts.Preset into concrete extraction options.
// "full", an empty preset, and unknown preset names all pass the options
// through unchanged.
func ResolvePreset(opts ExtractOptions) ExtractOptions {
	ov, ok := presetOverrides[opts.Preset]
	if !ok {
		return opts
	}

	opts.ExcludeTags = append([]string(nil), ov.excludeTags...)
	opts.Compress = true
	if ov.stripComments {
		opts.IncludeComments = false
	}
	return opts
}
