package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab made of named components. Each key of
// Components is decoded by the matching component builder.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PlayerComponentSpec struct {
	MovementSpeed    float64 `yaml:"movement_speed"`
	JumpForce        float64 `yaml:"jump_force"`
	DownDragForce    float64 `yaml:"down_drag_force"`
	UpDragPercentage float64 `yaml:"up_drag_percentage"`
	FallSpeedFloor   float64 `yaml:"fall_speed_floor"`
	GroundedEpsilon  float64 `yaml:"grounded_epsilon"`
	SpikeProbe       float64 `yaml:"spike_probe"`
	EnemyProbe       float64 `yaml:"enemy_probe"`
	ClearMargin      float64 `yaml:"clear_margin"`
	FloorLimit       float64 `yaml:"floor_limit"`
}

type CameraComponentSpec struct {
	LerpSpeed  float64 `yaml:"lerp_speed"`
	Depth      float64 `yaml:"depth"`
	HalfHeight float64 `yaml:"half_height"`
}

type EnemyComponentSpec struct {
	KillRadius float64 `yaml:"kill_radius"`
	Steering   float64 `yaml:"steering"`
}

// PrimitiveComponentSpec names a palette entry or a literal CSS color in
// Color. Alpha scales the resolved color.
type PrimitiveComponentSpec struct {
	Shape        string  `yaml:"shape"`
	Color        string  `yaml:"color"`
	Alpha        float64 `yaml:"alpha"`
	SortingOrder int     `yaml:"sorting_order"`
}

type TrailComponentSpec struct {
	Color    string  `yaml:"color"`
	Width    float64 `yaml:"width"`
	Duration float64 `yaml:"duration"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

type TrailsComponentSpec struct {
	Items []TrailComponentSpec `yaml:"items"`
}

type PhysicsBodyComponentSpec struct {
	Kind       string  `yaml:"kind"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
	Sensor     bool    `yaml:"sensor"`
	// ScaleWithTransform multiplies the collider by the transform scale.
	ScaleWithTransform bool `yaml:"scale_with_transform"`
}

type PersistentComponentSpec struct {
	ID           string `yaml:"id"`
	KeepOnReload bool   `yaml:"keep_on_reload"`
	Pinned       bool   `yaml:"pinned"`
}
