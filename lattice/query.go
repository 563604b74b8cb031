package lattice

import (
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/samber/lo"
)

// 所有至少出现过一次相关采样的障碍物区域，顺序不保证
func (n *Neighborhood) GetPathTimeObstacles() []PathTimeObstacle {
	t := n.mu.RLock()
	defer n.mu.RUnlock(t)
	return lo.MapToSlice(n.obstacleMap, func(_ string, r *PathTimeObstacle) PathTimeObstacle {
		return *r
	})
}

// 查询指定障碍物的(s,t)区域
func (n *Neighborhood) GetPathTimeObstacle(id string) (PathTimeObstacle, bool) {
	t := n.mu.RLock()
	defer n.mu.RUnlock(t)
	if r, ok := n.obstacleMap[id]; ok {
		return *r, true
	}
	return PathTimeObstacle{}, false
}

// 查询障碍物沿参考线的纵向速度，取其最后一个相关采样处的投影
func (n *Neighborhood) SpeedOnRefLine(id string) (float64, bool) {
	t := n.mu.RLock()
	defer n.mu.RUnlock(t)
	v, ok := n.speeds[id]
	return v, ok
}

// 障碍物区域整体位于自车初始s的前方
func (n *Neighborhood) IsForward(id string) bool {
	r, ok := n.GetPathTimeObstacle(id)
	return ok && r.PathLower >= n.initS[0]
}

// 障碍物区域整体位于自车初始s的后方
func (n *Neighborhood) IsBackward(id string) bool {
	r, ok := n.GetPathTimeObstacle(id)
	return ok && r.PathUpper < n.initS[0]
}

// 前方最近障碍物（PathLower最小者）
func (n *Neighborhood) ForwardNearestObstacle() (PathTimeObstacle, bool) {
	t := n.mu.RLock()
	defer n.mu.RUnlock(t)
	var nearest PathTimeObstacle
	found := false
	best := mathutil.INF
	for _, r := range n.obstacleMap {
		if r.PathLower < n.initS[0] {
			continue
		}
		if r.PathLower < best {
			best = r.PathLower
			nearest = *r
			found = true
		}
	}
	return nearest, found
}

// 后方最近障碍物（PathUpper最大者）
func (n *Neighborhood) BackwardNearestObstacle() (PathTimeObstacle, bool) {
	t := n.mu.RLock()
	defer n.mu.RUnlock(t)
	var nearest PathTimeObstacle
	found := false
	best := -mathutil.INF
	for _, r := range n.obstacleMap {
		if r.PathUpper >= n.initS[0] {
			continue
		}
		if r.PathUpper > best {
			best = r.PathUpper
			nearest = *r
			found = true
		}
	}
	return nearest, found
}
