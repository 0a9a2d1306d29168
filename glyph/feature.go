package glyph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/zigen/curve"
)

var (
	// ErrUnknownFeature indicates a stroke feature missing from the catalog.
	ErrUnknownFeature = errors.New("glyph: unknown stroke feature")

	// ErrFeatureSchema indicates draw commands that do not fit a feature.
	ErrFeatureSchema = errors.New("glyph: draws do not match feature schema")
)

// Feature names a calligraphic stroke type.
type Feature string

// Stroke catalog.
const (
	Heng           Feature = "横"
	Ti             Feature = "提"
	Shu            Feature = "竖"
	ShuGou         Feature = "竖钩"
	Pie            Feature = "撇"
	Dian           Feature = "点"
	Na             Feature = "捺"
	HengGou        Feature = "横钩"
	HengPie        Feature = "横撇"
	HengZhe        Feature = "横折"
	HengZheGou     Feature = "横折钩"
	HengXieGou     Feature = "横斜钩"
	HengZheTi      Feature = "横折提"
	HengZheZhe     Feature = "横折折"
	HengZheWan     Feature = "横折弯"
	HengPieWanGou  Feature = "横撇弯钩"
	HengZheWanGou  Feature = "横折弯钩"
	HengZheZhePie  Feature = "横折折撇"
	HengZheZheZhe  Feature = "横折折折"
	HengZheZheZheG Feature = "横折折折钩"
	ShuTi          Feature = "竖提"
	ShuZhe         Feature = "竖折"
	ShuWan         Feature = "竖弯"
	ShuWanGou      Feature = "竖弯钩"
	ShuZhePie      Feature = "竖折撇"
	ShuZheZheGou   Feature = "竖折折钩"
	ShuZheZhe      Feature = "竖折折"
	PieDian        Feature = "撇点"
	PieZhe         Feature = "撇折"
	WanGou         Feature = "弯钩"
	XieGou         Feature = "斜钩"
	Quan           Feature = "圈"
)

// schemas maps each feature to its draw pattern:
// 's' straight (h, v or l), 'c' cubic, 'a' circle.
var schemas = map[Feature]string{
	Heng: "s", Ti: "s", Shu: "s", ShuGou: "ss",
	Pie: "c", Dian: "c", Na: "c",
	HengGou: "ss", HengPie: "sc", HengZhe: "ss", HengZheGou: "sss",
	HengXieGou: "scs", HengZheTi: "sss", HengZheZhe: "sss", HengZheWan: "sscs",
	HengPieWanGou: "sccs", HengZheWanGou: "sscs", HengZheZhePie: "sssc",
	HengZheZheZhe: "ssss", HengZheZheZheG: "sssss",
	ShuTi: "ss", ShuZhe: "ss", ShuWan: "scs", ShuWanGou: "scss",
	ShuZhePie: "ssc", ShuZheZheGou: "ssss", ShuZheZhe: "sss",
	PieDian: "cc", PieZhe: "cs", WanGou: "cs", XieGou: "cs",
	Quan: "a",
}

// Known reports whether f is in the catalog.
func (f Feature) Known() bool {
	_, ok := schemas[f]
	return ok
}

// Schema returns the draw pattern of f, or "" if f is unknown.
func (f Feature) Schema() string { return schemas[f] }

// Features returns the whole catalog, sorted.
func Features() []Feature {
	out := maps.Keys(schemas)
	slices.Sort(out)
	return out
}

// matchSchema checks draws against a schema string.
func matchSchema(f Feature, draws []curve.Draw) error {
	schema := []rune(schemas[f])
	if len(schema) != len(draws) {
		return fmt.Errorf("%w: %s wants %d draws, got %d", ErrFeatureSchema, f, len(schema), len(draws))
	}
	for i, d := range draws {
		var ok bool
		switch schema[i] {
		case 's':
			ok = d.Kind == curve.DrawH || d.Kind == curve.DrawV || d.Kind == curve.DrawL
		case 'c':
			ok = d.Kind == curve.DrawC
		case 'a':
			ok = d.Kind == curve.DrawA
		}
		if !ok {
			return fmt.Errorf("%w: %s draw %d is %v", ErrFeatureSchema, f, i, d.Kind)
		}
	}
	return nil
}
