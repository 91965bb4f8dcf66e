package geometry

// Material is one of the six flat colours the scene is painted with.
type Material int

const (
	Yellow Material = iota
	Red
	White
	Purple
	Grey
	Black
)

var materialHex = [...]uint32{
	Yellow: 0xfdd276,
	Red:    0xad3525,
	White:  0xffffff,
	Purple: 0x451954,
	Grey:   0x653f4c,
	Black:  0x302925,
}

var materialNames = [...]string{
	Yellow: "yellow",
	Red:    "red",
	White:  "white",
	Purple: "purple",
	Grey:   "grey",
	Black:  "black",
}

// Hex returns the 0xRRGGBB colour.
func (m Material) Hex() uint32 {
	if m < 0 || int(m) >= len(materialHex) {
		return 0xff00ff
	}
	return materialHex[m]
}

// Color returns the colour as linear-ish RGB in [0, 1].
func (m Material) Color() [3]float32 {
	return HexColor(m.Hex())
}

func (m Material) String() string {
	if m < 0 || int(m) >= len(materialNames) {
		return "unknown"
	}
	return materialNames[m]
}

// HexColor splits 0xRRGGBB into RGB components in [0, 1].
func HexColor(hex uint32) [3]float32 {
	return [3]float32{
		float32(hex>>16&0xff) / 255,
		float32(hex>>8&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
