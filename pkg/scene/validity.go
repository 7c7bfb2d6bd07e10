package scene

// Field names reported by the validity records. They double as the keys the
// presentation layer uses to find the widget to highlight.
const (
	FieldWidth    = "width"
	FieldHeight   = "height"
	FieldCamX     = "camx"
	FieldCamY     = "camy"
	FieldCamZ     = "camz"
	FieldCamFOV   = "camfov"
	FieldFilename = "filename"
	FieldX        = "x"
	FieldY        = "y"
	FieldZ        = "z"
	FieldRotX     = "rotx"
	FieldRotY     = "roty"
	FieldRotZ     = "rotz"
)

// SceneConfigValidity records pass/fail for each Config field.
type SceneConfigValidity struct {
	Width  bool
	Height bool
	CamX   bool
	CamY   bool
	CamZ   bool
	CamFOV bool
}

// Valid reports whether every field passed.
func (v SceneConfigValidity) Valid() bool {
	return v.Width && v.Height && v.CamX && v.CamY && v.CamZ && v.CamFOV
}

// Invalid lists the failing field names in display order.
func (v SceneConfigValidity) Invalid() []string {
	return failing(
		check{FieldWidth, v.Width},
		check{FieldHeight, v.Height},
		check{FieldCamFOV, v.CamFOV},
		check{FieldCamX, v.CamX},
		check{FieldCamY, v.CamY},
		check{FieldCamZ, v.CamZ},
	)
}

// ModelEntryValidity records pass/fail for each validated ModelEntry field.
// Flip flags are booleans already and have no entry here.
type ModelEntryValidity struct {
	Filename bool
	X        bool
	Y        bool
	Z        bool
	RotX     bool
	RotY     bool
	RotZ     bool
}

// Valid reports whether every field passed.
func (v ModelEntryValidity) Valid() bool {
	return v.Filename && v.X && v.Y && v.Z && v.RotX && v.RotY && v.RotZ
}

// Invalid lists the failing field names in display order.
func (v ModelEntryValidity) Invalid() []string {
	return failing(
		check{FieldFilename, v.Filename},
		check{FieldX, v.X},
		check{FieldY, v.Y},
		check{FieldZ, v.Z},
		check{FieldRotX, v.RotX},
		check{FieldRotY, v.RotY},
		check{FieldRotZ, v.RotZ},
	)
}

// Report is the validity of a whole scene: the config plus one record per
// model, in collection order.
type Report struct {
	Scene  SceneConfigValidity
	Models []ModelEntryValidity
}

// Valid is the render gate: true only when no field anywhere failed.
func (r Report) Valid() bool {
	if !r.Scene.Valid() {
		return false
	}
	for _, m := range r.Models {
		if !m.Valid() {
			return false
		}
	}
	return true
}

// InvalidModels returns the indices of models with at least one failing field.
func (r Report) InvalidModels() []int {
	var out []int
	for idx, m := range r.Models {
		if !m.Valid() {
			out = append(out, idx)
		}
	}
	return out
}

// Validate runs every validator over cfg and each entry of models.
func Validate(cfg *Config, models *Collection) Report {
	report := Report{}
	if cfg != nil {
		report.Scene = cfg.Validate()
	}
	if models == nil {
		return report
	}
	report.Models = make([]ModelEntryValidity, 0, models.Len())
	for _, entry := range models.Entries() {
		report.Models = append(report.Models, entry.Validate())
	}
	return report
}

type check struct {
	name string
	ok   bool
}

func failing(checks ...check) []string {
	var out []string
	for _, c := range checks {
		if !c.ok {
			out = append(out, c.name)
		}
	}
	return out
}
