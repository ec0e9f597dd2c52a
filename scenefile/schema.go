package scenefile

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/anim"
)

type fileSpec struct {
	Root            uint32            `yaml:"root"`
	TimeStretch     string            `yaml:"timeStretch"`
	Duration        anim.Frame        `yaml:"duration"`
	ScaledTimeRange *[2]anim.Frame    `yaml:"scaledTimeRange"`
	Compositions    []compositionSpec `yaml:"compositions"`
}

type compositionSpec struct {
	ID           uint32          `yaml:"id"`
	Kind         string          `yaml:"kind"`
	Width        int32           `yaml:"width"`
	Height       int32           `yaml:"height"`
	Duration     anim.Frame      `yaml:"duration"`
	FrameRate    float32         `yaml:"frameRate"`
	Background   yaml.Node       `yaml:"background"`
	StaticRanges [][2]anim.Frame `yaml:"staticRanges"`
	Audio        *audioSpec      `yaml:"audio"`
	Layers       []layerSpec     `yaml:"layers"`
}

type audioSpec struct {
	// Data is the encoded stream; tag it !!binary for base64.
	Data     string        `yaml:"data"`
	Duration time.Duration `yaml:"duration"`
	Start    anim.Frame    `yaml:"start"`
	Volume   []volumeSpec  `yaml:"volume"`
}

type volumeSpec struct {
	Time  [2]anim.Frame `yaml:"time"`
	Value [2]float32    `yaml:"value"`
}

type layerSpec struct {
	ID         uint32        `yaml:"id"`
	Name       string        `yaml:"name"`
	Parent     uint32        `yaml:"parent"`
	Start      anim.Frame    `yaml:"start"`
	Duration   anim.Frame    `yaml:"duration"`
	Blend      string        `yaml:"blend"`
	TrackMatte uint32        `yaml:"trackMatte"`
	MatteType  string        `yaml:"matteType"`
	Transform  transformSpec `yaml:"transform"`
	Masks      []maskSpec    `yaml:"masks"`
	Effects    []effectSpec  `yaml:"effects"`
	Styles     []styleSpec   `yaml:"styles"`

	// At most one content block; none makes a null layer.
	Solid      *solidSpec      `yaml:"solid"`
	Shapes     []shapeSpec     `yaml:"shapes"`
	Text       *textSpec       `yaml:"text"`
	Image      *imageSpec      `yaml:"image"`
	PreCompose *preComposeSpec `yaml:"precompose"`
}

type transformSpec struct {
	Anchor   yaml.Node `yaml:"anchor"`
	Position yaml.Node `yaml:"position"`
	X        yaml.Node `yaml:"x"`
	Y        yaml.Node `yaml:"y"`
	Scale    yaml.Node `yaml:"scale"`
	Skew     yaml.Node `yaml:"skew"`
	SkewAxis yaml.Node `yaml:"skewAxis"`
	Rotation yaml.Node `yaml:"rotation"`
	Opacity  yaml.Node `yaml:"opacity"`
}

type maskSpec struct {
	ID        uint32    `yaml:"id"`
	Mode      string    `yaml:"mode"`
	Inverted  bool      `yaml:"inverted"`
	Path      yaml.Node `yaml:"path"`
	Opacity   yaml.Node `yaml:"opacity"`
	Expansion yaml.Node `yaml:"expansion"`
}

type effectSpec struct {
	Type       string    `yaml:"type"`
	Blurriness yaml.Node `yaml:"blurriness"`
	Threshold  yaml.Node `yaml:"threshold"`
	Radius     yaml.Node `yaml:"radius"`
	Intensity  yaml.Node `yaml:"intensity"`
	Brightness yaml.Node `yaml:"brightness"`
	Contrast   yaml.Node `yaml:"contrast"`
}

type styleSpec struct {
	Type     string    `yaml:"type"`
	Blend    string    `yaml:"blend"`
	Color    yaml.Node `yaml:"color"`
	Opacity  yaml.Node `yaml:"opacity"`
	Angle    yaml.Node `yaml:"angle"`
	Distance yaml.Node `yaml:"distance"`
	Size     yaml.Node `yaml:"size"`
	Spread   yaml.Node `yaml:"spread"`
}

type solidSpec struct {
	Color  yaml.Node `yaml:"color"`
	Width  int32     `yaml:"width"`
	Height int32     `yaml:"height"`
}

type shapeSpec struct {
	Type      string         `yaml:"type"`
	Elements  []shapeSpec    `yaml:"elements"`
	Transform *transformSpec `yaml:"transform"`
	Position  yaml.Node      `yaml:"position"`
	Size      yaml.Node      `yaml:"size"`
	Roundness yaml.Node      `yaml:"roundness"`
	Path      yaml.Node      `yaml:"path"`
	Color     yaml.Node      `yaml:"color"`
	Opacity   yaml.Node      `yaml:"opacity"`
	Width     yaml.Node      `yaml:"width"`
	Start     yaml.Node      `yaml:"start"`
	End       yaml.Node      `yaml:"end"`
	Offset    yaml.Node      `yaml:"offset"`
}

type textSpec struct {
	Text      string         `yaml:"text"`
	Font      string         `yaml:"font"`
	Size      float32        `yaml:"size"`
	Changes   []textChange   `yaml:"changes"`
	Animators []animatorSpec `yaml:"animators"`
}

// textChange replaces the text from Time on.
type textChange struct {
	Time anim.Frame `yaml:"time"`
	Text string     `yaml:"text"`
}

type animatorSpec struct {
	Selectors   []selectorSpec `yaml:"selectors"`
	FillColor   yaml.Node      `yaml:"fillColor"`
	StrokeColor yaml.Node      `yaml:"strokeColor"`
	Tracking    yaml.Node      `yaml:"tracking"`
	Position    yaml.Node      `yaml:"position"`
	Scale       yaml.Node      `yaml:"scale"`
	Rotation    yaml.Node      `yaml:"rotation"`
	Opacity     yaml.Node      `yaml:"opacity"`
}

type selectorSpec struct {
	Type       string    `yaml:"type"`
	BasedOn    string    `yaml:"basedOn"`
	Mode       yaml.Node `yaml:"mode"`
	Units      string    `yaml:"units"`
	Shape      string    `yaml:"shape"`
	Start      yaml.Node `yaml:"start"`
	End        yaml.Node `yaml:"end"`
	Offset     yaml.Node `yaml:"offset"`
	Amount     yaml.Node `yaml:"amount"`
	EaseHigh   yaml.Node `yaml:"easeHigh"`
	EaseLow    yaml.Node `yaml:"easeLow"`
	Randomize  bool      `yaml:"randomize"`
	Seed       yaml.Node `yaml:"seed"`
	Max        yaml.Node `yaml:"max"`
	Min        yaml.Node `yaml:"min"`
	Wiggles    yaml.Node `yaml:"wiggles"`
	Correlate  yaml.Node `yaml:"correlation"`
	Temporal   yaml.Node `yaml:"temporalPhase"`
	Spatial    yaml.Node `yaml:"spatialPhase"`
	Expression string    `yaml:"expression"`
}

type imageSpec struct {
	ID        uint32    `yaml:"id"`
	Width     int32     `yaml:"width"`
	Height    int32     `yaml:"height"`
	Movie     uint32    `yaml:"movie"`
	TimeRemap yaml.Node `yaml:"timeRemap"`
}

type preComposeSpec struct {
	Composition uint32     `yaml:"composition"`
	Start       anim.Frame `yaml:"start"`
	// File names another scene file, resolved by the Loader.
	File string `yaml:"file"`
}

type keyframeSpec struct {
	Time   [2]anim.Frame `yaml:"time"`
	Value  []yaml.Node   `yaml:"value"`
	Interp string        `yaml:"interp"`
	Out    [][2]float32  `yaml:"out"`
	In     [][2]float32  `yaml:"in"`
}

type pathSpec struct {
	Vertices [][2]float32 `yaml:"vertices"`
	In       [][2]float32 `yaml:"in"`
	Out      [][2]float32 `yaml:"out"`
	Closed   bool         `yaml:"closed"`
}
