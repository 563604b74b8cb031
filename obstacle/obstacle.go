package obstacle

import (
	"math"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "obstacle")

// 归一化到(-pi, pi]
func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// 将预测轨迹在相对时刻t处插值，t超出轨迹范围时取端点
func (o *Obstacle) GetPointAtTime(t float64) TrajectoryPoint {
	n := len(o.Trajectory)
	if n == 0 {
		log.Warnf("obstacle %s has no predicted trajectory", o.ID)
		return TrajectoryPoint{}
	}
	if n == 1 || t <= o.Trajectory[0].RelativeTime {
		return o.Trajectory[0]
	}
	if t >= o.Trajectory[n-1].RelativeTime {
		return o.Trajectory[n-1]
	}
	i := sort.Search(n, func(i int) bool {
		return o.Trajectory[i].RelativeTime >= t
	})
	p0, p1 := o.Trajectory[i-1], o.Trajectory[i]
	w := (t - p0.RelativeTime) / (p1.RelativeTime - p0.RelativeTime)
	return TrajectoryPoint{
		Pos:          geometry.Blend(p0.Pos, p1.Pos, w),
		Theta:        normalizeAngle(p0.Theta + normalizeAngle(p1.Theta-p0.Theta)*w),
		V:            p0.V + (p1.V-p0.V)*w,
		RelativeTime: t,
	}
}

// 障碍物在给定位姿处的包围盒
func (o *Obstacle) GetBoundingBox(p TrajectoryPoint) Box2d {
	return Box2d{
		Center: p.Pos,
		Theta:  p.Theta,
		Length: o.Length,
		Width:  o.Width,
	}
}

// 四个角点，顺序为前左、前右、后右、后左
func (b *Box2d) Corners() [4]geometry.Point {
	sin, cos := math.Sincos(b.Theta)
	halfL, halfW := b.Length/2, b.Width/2
	// 沿航向与垂直航向的半轴向量
	lx, ly := halfL*cos, halfL*sin
	wx, wy := -halfW*sin, halfW*cos
	c := b.Center
	return [4]geometry.Point{
		{X: c.X + lx + wx, Y: c.Y + ly + wy},
		{X: c.X + lx - wx, Y: c.Y + ly - wy},
		{X: c.X - lx - wx, Y: c.Y - ly - wy},
		{X: c.X - lx + wx, Y: c.Y - ly + wy},
	}
}
