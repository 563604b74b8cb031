package obstacle

import (
	"git.fiblab.net/general/common/v2/geometry"
)

// 预测轨迹上的一个位姿采样
type TrajectoryPoint struct {
	Pos   geometry.Point
	Theta float64 // 航向角/rad
	V     float64 // 速率/(m/s)
	// 相对预测起点的时间/s
	RelativeTime float64
}

// 感知模块给出的单个障碍物快照
type Obstacle struct {
	ID string
	// 包围盒尺寸
	Length float64 // 沿航向/m
	Width  float64 // 垂直航向/m
	// 感知速度向量(vx, vy)
	Velocity geometry.Point
	// 预测轨迹，RelativeTime递增，可以为空
	Trajectory []TrajectoryPoint
}

// 带航向的矩形包围盒
type Box2d struct {
	Center geometry.Point
	Theta  float64
	Length float64
	Width  float64
}
