package terrain

import "github.com/aravind1338/eecs545-artificial-curiosity/internal/model"

// Patch is a square field-of-view sample of the terrain centered at a
// position. Values are row-major luminance intensities in [0, 1].
type Patch struct {
	Center model.Position
	Size   int
	Values []float64
}

func (p *Patch) Mean() float64 {
	if len(p.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range p.Values {
		sum += v
	}
	return sum / float64(len(p.Values))
}
