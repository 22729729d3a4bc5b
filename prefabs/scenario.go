package prefabs

// ScenarioSpec describes a headless run: the arena, who is in it and the
// scripted input the player receives.
type ScenarioSpec struct {
	Name       string          `yaml:"name"`
	Ticks      int             `yaml:"ticks"`
	Seed       int64           `yaml:"seed"`
	Difficulty string          `yaml:"difficulty"`
	// Grace holds the enemies for this many seconds after the start
	// banner appears.
	Grace      float64         `yaml:"grace"`
	Banner     string          `yaml:"banner"`
	Arena      ArenaSpec       `yaml:"arena"`
	Player     ActorSpec       `yaml:"player"`
	Enemies    []ActorSpec     `yaml:"enemies"`
	Input      []InputStepSpec `yaml:"input"`
}

type ArenaSpec struct {
	Width     int       `yaml:"width"`
	Depth     int       `yaml:"depth"`
	CellSize  float64   `yaml:"cell_size"`
	Origin    Vec3      `yaml:"origin"`
	Obstacles []BoxSpec `yaml:"obstacles"`
}

// BoxSpec is an axis aligned wall footprint on the ground plane.
type BoxSpec struct {
	Min    Vec3    `yaml:"min"`
	Max    Vec3    `yaml:"max"`
	Height float64 `yaml:"height"`
}

type ActorSpec struct {
	Name     string  `yaml:"name"`
	Position Vec3    `yaml:"position"`
	Yaw      float64 `yaml:"yaw"`
	Prefab   string  `yaml:"prefab"`
}

// InputStepSpec holds a key or mouse button over [from, to) ticks, or
// applies a look/scroll delta at tick from.
type InputStepSpec struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Key    string  `yaml:"key"`
	Mouse  *int    `yaml:"mouse"`
	LookX  float64 `yaml:"look_x"`
	LookY  float64 `yaml:"look_y"`
	Scroll float64 `yaml:"scroll"`
}

func LoadScenarioSpec(filename string) (ScenarioSpec, error) {
	return LoadSpec[ScenarioSpec](filename)
}
