// Package export assembles and serializes SuperSplat-compatible camera
// animation records.
package export

// Coordinate system tags understood by the viewer.
const (
	SystemSuperSplat = "SUPERSPLAT"
	SystemBlender    = "BLENDER"
)

// Generator identifies this tool in the record metadata.
const Generator = "splatcam v1.0"

// Pose is one emitted camera keyframe. Frame numbers are 1-based, as the
// viewer expects.
type Pose struct {
	Frame       int        `json:"frame"`
	Time        float64    `json:"time"`
	Position    [3]float64 `json:"position"`
	Target      [3]float64 `json:"target"`
	FocalLength float64    `json:"focal_length"`
	FOV         float64    `json:"fov"`
	Name        string     `json:"name"`
}

// Animation is the complete output record. The field order matches the
// layout the viewer's importer was written against; optional fields are
// present only for the path shape and target mode that produced the record.
type Animation struct {
	CameraName          string     `json:"camera_name"`
	FrameRate           int        `json:"frame_rate"`
	FrameStart          int        `json:"frame_start"`
	FrameEnd            int        `json:"frame_end"`
	FrameStep           int        `json:"frame_step"`
	CoordinateSystem    string     `json:"coordinate_system"`
	TotalFrames         int        `json:"total_frames"`
	KeyframesGenerated  int        `json:"keyframes_generated"`
	KeyframeStep        int        `json:"keyframe_step"`
	AnimationType       string     `json:"animation_type"`
	Direction           string     `json:"direction"`
	ExportTimestamp     string     `json:"export_timestamp"`
	CoordinatePrecision int        `json:"coordinate_precision"`
	Center              [3]float64 `json:"center"`
	Poses               []Pose     `json:"poses"`

	TargetDistance *float64    `json:"target_distance,omitempty"`
	Target         *[3]float64 `json:"target,omitempty"`

	Radius *float64 `json:"radius,omitempty"`

	SpiralLoops *float64 `json:"spiral_loops,omitempty"`
	StartRadius *float64 `json:"start_radius,omitempty"`
	EndRadius   *float64 `json:"end_radius,omitempty"`
	StartHeight *float64 `json:"start_height,omitempty"`
	EndHeight   *float64 `json:"end_height,omitempty"`

	Generator string `json:"generator"`
}
