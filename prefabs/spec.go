package prefabs

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	return LoadSpecFrom[T](Default, filename)
}

func LoadSpecFrom[T any](src Source, filename string) (T, error) {
	var zero T
	data, err := src.Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3 accepts either [x, y, z] or {x:, y:, z:} in YAML.
type Vec3 mgl64.Vec3

func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := node.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("prefabs: line %d: vec3 needs 3 components, got %d", node.Line, len(xs))
		}
		*v = Vec3{xs[0], xs[1], xs[2]}
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		*v = Vec3{m.X, m.Y, m.Z}
		return nil
	default:
		return fmt.Errorf("prefabs: line %d: vec3 must be a list or mapping", node.Line)
	}
}

type ModifierSpec struct {
	Stat  string `yaml:"stat"`
	Value string `yaml:"value"`
	Mode  string `yaml:"mode"` // "set" (default) or "add"
}

type AttachmentSpec struct {
	Name      string         `yaml:"name"`
	Unlocked  bool           `yaml:"unlocked"`
	Equipped  bool           `yaml:"equipped"`
	Position  Vec3           `yaml:"position"`
	Rotation  Vec3           `yaml:"rotation"`
	AimOffset Vec3           `yaml:"aim_offset"`
	Modifiers []ModifierSpec `yaml:"modifiers"`
}

type AttachmentsSpec struct {
	Magazine []AttachmentSpec `yaml:"magazine"`
	Foregrip []AttachmentSpec `yaml:"foregrip"`
	Rail     []AttachmentSpec `yaml:"rail"`
	Scope    []AttachmentSpec `yaml:"scope"`
	Muzzle   []AttachmentSpec `yaml:"muzzle"`
}

type SwitchAnglesSpec struct {
	Safe float64 `yaml:"safe"`
	Semi float64 `yaml:"semi"`
	Full float64 `yaml:"full"`
}

// AxesSpec times the three axes of a pose point. Axes listed in Skip keep
// their current value.
type AxesSpec struct {
	Skip     [3]bool `yaml:"skip"`
	Duration Vec3    `yaml:"duration"`
}

type PosePointSpec struct {
	Position       Vec3     `yaml:"position"`
	PositionAxes   AxesSpec `yaml:"position_axes"`
	PositionLinear bool     `yaml:"position_linear"`
	Rotation       Vec3     `yaml:"rotation"`
	RotationAxes   AxesSpec `yaml:"rotation_axes"`
	RotationLinear bool     `yaml:"rotation_linear"`
}

type WeaponSpec struct {
	Name             string           `yaml:"name"`
	MagazineSize     int              `yaml:"magazine_size"`
	MaxReserveAmmo   int              `yaml:"max_reserve_ammo"`
	RoundsPerMinute  float64          `yaml:"rounds_per_minute"`
	Damage           float64          `yaml:"damage"`
	Spread           float32          `yaml:"spread"`
	Recoil           Vec3             `yaml:"recoil"`
	ReloadDuration   float64          `yaml:"reload_duration"`
	AimInDuration    float64          `yaml:"aim_in_duration"`
	AimOutDuration   float64          `yaml:"aim_out_duration"`
	HandSwapDuration float64          `yaml:"hand_swap_duration"`
	LeftHand         bool             `yaml:"left_hand"`
	RightHandOffset  Vec3             `yaml:"right_hand_offset"`
	LeftHandOffset   Vec3             `yaml:"left_hand_offset"`
	AimOffset        Vec3             `yaml:"aim_offset"`
	AllowedModes     []string         `yaml:"allowed_modes"`
	StartMode        string           `yaml:"start_mode"`
	SwitchAngles     SwitchAnglesSpec `yaml:"switch_angles"`
	ClearOnStart     *bool            `yaml:"clear_on_start"`
	Script           string           `yaml:"script"`
	BoltPoints       []PosePointSpec  `yaml:"bolt_points"`
	Attachments      AttachmentsSpec  `yaml:"attachments"`
}

type ControlValueSpec struct {
	Action             string `yaml:"action"`
	IsKeybind          *bool  `yaml:"is_keybind"`
	UseMouseButton     bool   `yaml:"use_mouse_button"`
	DefaultKey         string `yaml:"default_key"`
	BoundKey           string `yaml:"bound_key"`
	DefaultMouseButton int    `yaml:"default_mouse_button"`
	BoundMouseButton   int    `yaml:"bound_mouse_button"`
}

// Keybind reports whether the entry participates in bindings. Entries
// without the flag default to true.
func (c ControlValueSpec) Keybind() bool {
	return c.IsKeybind == nil || *c.IsKeybind
}

type ControlSpec struct {
	LookSpeed *float64           `yaml:"look_speed"`
	Controls  []ControlValueSpec `yaml:"controls"`
}

const defaultLookSpeed = 5.0

func (c ControlSpec) Look() float64 {
	if c.LookSpeed == nil {
		return defaultLookSpeed
	}
	return *c.LookSpeed
}

// EnemySpec tunes an enemy prefab. Pointer fields are optional and keep
// the default when absent; an explicit zero is honoured.
type EnemySpec struct {
	Name              string   `yaml:"name"`
	Difficulty        string   `yaml:"difficulty"`
	BaseSpeed         *float64 `yaml:"base_speed"`
	DetectionRange    *float64 `yaml:"detection_range"`
	ShootingRange     *float64 `yaml:"shooting_range"`
	FireRate          *float64 `yaml:"fire_rate"`
	EyeHeight         *float64 `yaml:"eye_height"`
	TargetAimHeight   *float64 `yaml:"target_aim_height"`
	TurnSpeed         *float64 `yaml:"turn_speed"`
	FireFacingAngle   *float64 `yaml:"fire_facing_angle"`
	TurnThenMove      *bool    `yaml:"turn_then_move"`
	TurnInPlaceAngle  *float64 `yaml:"turn_in_place_angle"`
	RotateWhileMoving *bool    `yaml:"rotate_while_moving"`
	Roam              *bool    `yaml:"roam"`
	RoamAroundCurrent bool     `yaml:"roam_around_current"`
	RoamRadius        *float64 `yaml:"roam_radius"`
	SampleDistance    *float64 `yaml:"sample_distance"`
	PickAttempts      int      `yaml:"pick_attempts"`
	WaitMin           *float64 `yaml:"wait_min"`
	WaitMax           *float64 `yaml:"wait_max"`
	ArriveTolerance   *float64 `yaml:"arrive_tolerance"`
	StoppingDistance  float64  `yaml:"stopping_distance"`
	PatrolPoints      []Vec3   `yaml:"patrol_points"`
	PatrolTolerance   *float64 `yaml:"patrol_tolerance"`
	WalkParam         string   `yaml:"walk_param"`
	SpeedParam        string   `yaml:"speed_param"`
	ShootTrigger      string   `yaml:"shoot_trigger"`
	Damage            float64  `yaml:"damage"`
	Health            float64  `yaml:"health"`
	Radius            float64  `yaml:"radius"`
	Height            float64  `yaml:"height"`
	Script            string   `yaml:"script"`
	Tags              []string `yaml:"tags"`
}

type PlayerSpec struct {
	MoveSpeed         float64 `yaml:"move_speed"`
	MinMoveSpeed      float64 `yaml:"min_move_speed"`
	MaxMoveSpeed      float64 `yaml:"max_move_speed"`
	SpeedChangeStep   float64 `yaml:"speed_change_step"`
	LeanAngle         float64 `yaml:"lean_angle"`
	LeanRotationSpeed float64 `yaml:"lean_rotation_speed"`
	LeanClearance     float64 `yaml:"lean_clearance"`
	LeanProbeRadius   float64 `yaml:"lean_probe_radius"`
	LeanProbeDistance float64 `yaml:"lean_probe_distance"`
	HeadHeight        float64 `yaml:"head_height"`
	Radius            float64 `yaml:"radius"`
	BobAmplitude      float64 `yaml:"bob_amplitude"`
	BobFrequency      float64 `yaml:"bob_frequency"`
	BobReturnSpeed    float64 `yaml:"bob_return_speed"`
}

type FadeSpec struct {
	TextFadeInAlpha   int     `yaml:"text_fade_in_alpha"`
	ImageFadeInAlpha  int     `yaml:"image_fade_in_alpha"`
	FadeIn            float64 `yaml:"fade_in"`
	RemainVisible     float64 `yaml:"remain_visible"`
	TextFadeOutAlpha  int     `yaml:"text_fade_out_alpha"`
	ImageFadeOutAlpha int     `yaml:"image_fade_out_alpha"`
	FadeOut           float64 `yaml:"fade_out"`
}

func LoadWeaponSpec() (WeaponSpec, error) {
	return LoadSpec[WeaponSpec]("weapon.yaml")
}

func LoadControlSpec() (ControlSpec, error) {
	return LoadSpec[ControlSpec]("controls.yaml")
}

func LoadEnemySpec() (EnemySpec, error) {
	return LoadSpec[EnemySpec]("enemy.yaml")
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec[PlayerSpec]("player.yaml")
}

func LoadFadeSpec() (FadeSpec, error) {
	return LoadSpec[FadeSpec]("fade.yaml")
}

// Kind classifies an asset file name so reload callbacks can be routed.
func Kind(name string) string {
	base := strings.ToLower(cleanPrefabPath(name))
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
