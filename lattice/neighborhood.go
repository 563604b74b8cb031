package lattice

import (
	"math"

	"git.fiblab.net/sim/planning/v2/obstacle"
	"git.fiblab.net/sim/planning/v2/refline"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "lattice")

// 障碍物(s,t)邻域图
// 每个规划周期由当前障碍物快照构建一次，构建完成后只读
type Neighborhood struct {
	// 自车初始纵向状态[s, ds/dt, d2s/dt2]
	initS [3]float64
	// 障碍物id -> (s,t)区域
	obstacleMap map[string]*PathTimeObstacle
	// 障碍物id -> 沿参考线的纵向速度
	speeds map[string]float64

	// 构建期间写入，查询期间只读
	mu *xsync.RBMutex
}

// 对当前障碍物快照执行一次构建
func NewNeighborhood(
	obstacles []*obstacle.Obstacle,
	initS [3]float64,
	ref *refline.DiscretizedRefLine,
) *Neighborhood {
	n := &Neighborhood{
		initS:       initS,
		obstacleMap: make(map[string]*PathTimeObstacle),
		speeds:      make(map[string]float64),
		mu:          xsync.NewRBMutex(),
	}
	n.setupObstacles(obstacles, ref)
	return n
}

func (n *Neighborhood) setupObstacles(obstacles []*obstacle.Obstacle, ref *refline.DiscretizedRefLine) {
	for _, o := range obstacles {
		if len(o.Trajectory) == 0 {
			// 没有预测轨迹的障碍物直接跳过
			continue
		}
		// 每个障碍物独立从t=0开始采样，采样时刻为步长的整数倍
		acc := regionAccumulator{}
		for i := 0; ; i++ {
			t := float64(i) * TRAJECTORY_TIME_RESOLUTION
			if t >= PLANNED_TRAJECTORY_TIME {
				break
			}
			point := o.GetPointAtTime(t)
			box := o.GetBoundingBox(point)
			sl := ref.GetSLBoundary(box.Corners())
			if !n.inConsideredRegion(sl) {
				if acc.state == regionOpen {
					// 已离开相关区域的障碍物认为不会再进入
					break
				}
				continue
			}
			if acc.state == regionEmpty {
				acc.region.ID = o.ID
				acc.region.BottomLeft = PathTimePoint{ObstacleID: o.ID, S: sl.StartS, T: t}
				acc.region.UpperLeft = PathTimePoint{ObstacleID: o.ID, S: sl.EndS, T: t}
				acc.state = regionOpen
			}
			acc.region.BottomRight = PathTimePoint{ObstacleID: o.ID, S: sl.StartS, T: t}
			acc.region.UpperRight = PathTimePoint{ObstacleID: o.ID, S: sl.EndS, T: t}
			// 覆盖写入，保留最后一个相关采样处的纵向速度
			acc.speed = speedOnRefLine(ref, o, sl)
		}
		if acc.state == regionOpen {
			finalizeBounds(&acc.region)
			n.obstacleMap[o.ID] = &acc.region
			n.speeds[o.ID] = acc.speed
		}
	}
	log.Debugf("neighborhood built with %d of %d obstacles", len(n.obstacleMap), len(obstacles))
}

// 判断障碍物SL区间是否落入规划关注区域
func (n *Neighborhood) inConsideredRegion(sl refline.SLBoundary) bool {
	if sl.EndS < 0 {
		// 已完全落后于参考线起点
		return false
	}
	if sl.StartS > n.initS[0]+PLANNED_TRAJECTORY_HORIZON {
		// 超出纵向视距
		return false
	}
	if math.Abs(sl.StartL) > LATERAL_ENTER_LANE_THRED &&
		math.Abs(sl.EndL) > LATERAL_ENTER_LANE_THRED {
		// 两侧边缘横向均在车道之外
		return false
	}
	return true
}

// 感知速度向参考线切向投影，得到沿参考线的纵向速度
func speedOnRefLine(ref *refline.DiscretizedRefLine, o *obstacle.Obstacle, sl refline.SLBoundary) float64 {
	matched := ref.MatchToRefLine(sl.StartS)
	sin, cos := math.Sincos(matched.Theta)
	return cos*o.Velocity.X + sin*o.Velocity.Y
}

func finalizeBounds(r *PathTimeObstacle) {
	r.PathUpper = math.Max(r.BottomRight.S, r.UpperRight.S)
	r.PathLower = math.Min(r.BottomLeft.S, r.UpperLeft.S)
	r.TimeUpper = math.Max(r.BottomRight.T, r.UpperRight.T)
	r.TimeLower = math.Min(r.BottomLeft.T, r.UpperLeft.T)
}
