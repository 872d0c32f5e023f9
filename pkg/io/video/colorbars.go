package video

import (
	"math/rand"

	"github.com/pion/pixfmt/pkg/convert"
	"github.com/pion/pixfmt/pkg/frame"
)

// Luma, Cb, Cr of the seven bars: white, yellow, cyan, green, magenta, red
// and blue.
var barColors = [7][3]uint8{
	{235, 128, 128},
	{210, 16, 146},
	{170, 166, 16},
	{145, 54, 34},
	{107, 202, 222},
	{82, 90, 240},
	{41, 240, 110},
}

// ColorBars renders a test card in format f: seven colour bars over the top
// three quarters, a grey ramp and a patch of binary noise below. The same seed
// always gives the same frame.
func ColorBars(f frame.Format, width, height int, seed int64) (*frame.Image, error) {
	card := frame.NewImage(frame.FormatI444, width, height)
	l, err := card.Planes()
	if err != nil {
		return nil, err
	}

	barsEnd := height * 3 / 4
	rampEnd := width * 5 / 7
	random := rand.New(rand.NewSource(seed))
	for y := 0; y < height; y++ {
		row := y * l.YStride
		for x := 0; x < width; x++ {
			luma, cb, cr := uint8(0), uint8(128), uint8(128)
			switch {
			case y < barsEnd:
				c := barColors[x*7/width]
				luma, cb, cr = uint8(uint16(c[0])*75/100), c[1], c[2]
			case x < rampEnd:
				luma = uint8(x * 255 / rampEnd)
			default:
				luma = uint8(random.Int31n(2) * 255)
			}
			l.Y[row+x] = luma
			l.U[row+x] = cb
			l.V[row+x] = cr
		}
	}

	if f == frame.FormatI444 {
		return card, nil
	}
	out := frame.NewImage(f, width, height)
	if err := convert.ConvertImage(card, out); err != nil {
		return nil, err
	}
	return out, nil
}
