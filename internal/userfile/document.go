// Package userfile reads YAML user files into settings dictionaries.
//
// A user file describes one reduction: slicing, wavelength limits, sample
// geometry, output formats and per-bank detector corrections. Lengths are in
// millimetres and angles in degrees, as written by instrument scientists.
package userfile

// Document is the YAML form of a user file.
type Document struct {
	Reduction  *Reduction  `yaml:"reduction,omitempty"`
	Wavelength *Wavelength `yaml:"wavelength,omitempty"`
	Scale      *Scale      `yaml:"scale,omitempty"`
	Sample     *Sample     `yaml:"sample,omitempty"`
	Save       *Save       `yaml:"save,omitempty"`
	Detectors  *Detectors  `yaml:"detectors,omitempty"`
}

type Reduction struct {
	Mode           string `yaml:"mode,omitempty" validate:"omitempty,reduction_mode"`
	Dimensionality string `yaml:"dimensionality,omitempty" validate:"omitempty,dimensionality"`
	EventSlices    string `yaml:"event_slices,omitempty" validate:"omitempty,range_list"`
}

type Wavelength struct {
	Min      *float64 `yaml:"min,omitempty" validate:"omitempty,gte=0"`
	Max      *float64 `yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Step     *float64 `yaml:"step,omitempty" validate:"omitempty,gt=0"`
	StepType string   `yaml:"step_type,omitempty" validate:"omitempty,step_type"`
}

type Scale struct {
	Absolute *float64 `yaml:"absolute,omitempty" validate:"omitempty,gte=0"`
}

type Sample struct {
	Height    *float64 `yaml:"height,omitempty" validate:"omitempty,gte=0"`
	Width     *float64 `yaml:"width,omitempty" validate:"omitempty,gte=0"`
	Thickness *float64 `yaml:"thickness,omitempty" validate:"omitempty,gte=0"`
	Shape     string   `yaml:"shape,omitempty" validate:"omitempty,sample_shape"`
	ZOffset   *float64 `yaml:"z_offset,omitempty"`
}

type Save struct {
	Types             []string `yaml:"types,omitempty" validate:"omitempty,min=1,dive,save_type"`
	ZeroErrorFree     *bool    `yaml:"zero_error_free,omitempty"`
	CompatibilityMode *bool    `yaml:"compatibility_mode,omitempty"`
}

type Detectors struct {
	LAB *Bank `yaml:"lab,omitempty"`
	HAB *Bank `yaml:"hab,omitempty"`
}

// Bank holds the corrections and beam centre of one detector bank.
type Bank struct {
	Corrections *Corrections `yaml:"corrections,omitempty"`
	Centre      *Centre      `yaml:"centre,omitempty"`
}

type Corrections struct {
	X           *float64 `yaml:"x,omitempty"`
	Y           *float64 `yaml:"y,omitempty"`
	Z           *float64 `yaml:"z,omitempty"`
	Rotation    *float64 `yaml:"rotation,omitempty"`
	Radius      *float64 `yaml:"radius,omitempty"`
	Translation *float64 `yaml:"translation,omitempty"`
	XTilt       *float64 `yaml:"x_tilt,omitempty"`
	YTilt       *float64 `yaml:"y_tilt,omitempty"`
}

type Centre struct {
	Pos1 float64 `yaml:"pos1"`
	Pos2 float64 `yaml:"pos2"`
}
