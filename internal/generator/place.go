package generator

import (
	"strconv"

	"github.com/hitoshi/randapi/internal/model"
)

// coordPrecision は緯度経度の小数点以下の桁数。
const coordPrecision = 6

// Place はランダムな緯度経度を1件生成する。
func (g *Generator) Place() model.Place {
	lat := g.src.Float64()*180 - 90
	lon := g.src.Float64()*360 - 180

	return model.Place{
		Timestamp: g.timestamp(),
		Lat:       strconv.FormatFloat(lat, 'f', coordPrecision, 64),
		Lon:       strconv.FormatFloat(lon, 'f', coordPrecision, 64),
	}
}
