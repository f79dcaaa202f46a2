package enums

import "git.home.luguber.info/inful/sansstate/internal/foundation/normalization"

// SampleShape is the geometry used for the sample volume.
type SampleShape string

const (
	ShapeCylinderAxisUp    SampleShape = "CylinderAxisUp"
	ShapeCuboid            SampleShape = "Cuboid"
	ShapeCylinderAxisAlong SampleShape = "CylinderAxisAlong"
)

var sampleShapeNormalizer = normalization.NewNormalizer("sample shape", map[string]SampleShape{
	"CylinderAxisUp":    ShapeCylinderAxisUp,
	"Cuboid":            ShapeCuboid,
	"CylinderAxisAlong": ShapeCylinderAxisAlong,
})

// ParseSampleShape parses a sample shape name.
func ParseSampleShape(raw string) (SampleShape, error) {
	return sampleShapeNormalizer.Normalize(raw)
}

// Valid reports whether s is a member of the enumeration.
func (s SampleShape) Valid() bool { return sampleShapeNormalizer.Contains(s) }

func (s SampleShape) String() string { return string(s) }

// SaveType is an output file format for reduced data.
type SaveType string

const (
	SaveNXcanSAS SaveType = "NXcanSAS"
	SaveNexus    SaveType = "Nexus"
	SaveCanSAS   SaveType = "CanSAS"
	SaveRKH      SaveType = "RKH"
	SaveCSV      SaveType = "CSV"
	SaveNistQxy  SaveType = "NistQxy"
)

var saveTypeNormalizer = normalization.NewNormalizer("save type", map[string]SaveType{
	"NXcanSAS": SaveNXcanSAS,
	"Nexus":    SaveNexus,
	"CanSAS":   SaveCanSAS,
	"RKH":      SaveRKH,
	"CSV":      SaveCSV,
	"NistQxy":  SaveNistQxy,
})

// ParseSaveType parses an output format name.
func ParseSaveType(raw string) (SaveType, error) {
	return saveTypeNormalizer.Normalize(raw)
}

// Valid reports whether s is a member of the enumeration.
func (s SaveType) Valid() bool { return saveTypeNormalizer.Contains(s) }

func (s SaveType) String() string { return string(s) }
