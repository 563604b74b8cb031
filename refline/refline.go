package refline

import (
	"math"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/general/common/v2/mathutil"
	geov2 "git.fiblab.net/sim/protos/v2/go/city/geo/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "refline")

// 参考线上的离散点
type PathPoint struct {
	geometry.Point
	S     float64 // 距参考线起点的弧长/m
	Theta float64 // 切向航向角/rad
}

// 包围盒在参考线Frenet坐标下占据的区间
type SLBoundary struct {
	StartS float64
	EndS   float64
	StartL float64
	EndL   float64
}

// 离散化参考线，构建后只读
type DiscretizedRefLine struct {
	points []PathPoint
	// 累积弧长，与points对应
	lengths []float64
}

func New(line []geometry.Point) *DiscretizedRefLine {
	if len(line) < 2 {
		log.Panicf("reference line needs at least 2 points, got %d", len(line))
	}
	lengths := geometry.GetPolylineLengths2D(line)
	points := make([]PathPoint, len(line))
	for i, p := range line {
		// 顶点航向取后继线段方向，末点沿用前一线段
		j := i
		if j == len(line)-1 {
			j--
		}
		points[i] = PathPoint{
			Point: p,
			S:     lengths[i],
			Theta: math.Atan2(line[j+1].Y-line[j].Y, line[j+1].X-line[j].X),
		}
	}
	return &DiscretizedRefLine{points: points, lengths: lengths}
}

// 从pb坐标点序列构建参考线
func NewFromPb(nodes []*geov2.XYPosition) *DiscretizedRefLine {
	return New(lo.Map(nodes, func(node *geov2.XYPosition, _ int) geometry.Point {
		return geometry.NewPointFromPb(node)
	}))
}

// 参考线总长/m
func (r *DiscretizedRefLine) Length() float64 {
	return r.lengths[len(r.lengths)-1]
}

// 按弧长s匹配参考线上的点，位置与航向线性插值
func (r *DiscretizedRefLine) MatchToRefLine(s float64) PathPoint {
	ls := r.lengths
	if s < ls[0] || s > ls[len(ls)-1] {
		log.Warnf("match s %v out of range{%v,%v}", s, ls[0], ls[len(ls)-1])
		s = lo.Clamp(s, ls[0], ls[len(ls)-1])
	}
	i := sort.SearchFloat64s(ls, s)
	if i == 0 {
		return r.points[0]
	}
	sLow, sHigh := ls[i-1], ls[i]
	w := (s - sLow) / (sHigh - sLow)
	p0, p1 := r.points[i-1], r.points[i]
	return PathPoint{
		Point: geometry.Blend(p0.Point, p1.Point, w),
		S:     s,
		Theta: normalizeAngle(p0.Theta + normalizeAngle(p1.Theta-p0.Theta)*w),
	}
}

// 包围盒角点集合投影到参考线，取各角点(s,l)的最小/最大值
func (r *DiscretizedRefLine) GetSLBoundary(corners [4]geometry.Point) SLBoundary {
	b := SLBoundary{
		StartS: mathutil.INF,
		EndS:   -mathutil.INF,
		StartL: mathutil.INF,
		EndL:   -mathutil.INF,
	}
	for _, c := range corners {
		s, l := r.project(c)
		b.StartS = math.Min(b.StartS, s)
		b.EndS = math.Max(b.EndS, s)
		b.StartL = math.Min(b.StartL, l)
		b.EndL = math.Max(b.EndL, l)
	}
	return b
}

// 单点投影：取最近线段上的垂足，l左正右负
func (r *DiscretizedRefLine) project(p geometry.Point) (s, l float64) {
	best := mathutil.INF
	for i := 0; i+1 < len(r.points); i++ {
		a, b := r.points[i].Point, r.points[i+1].Point
		segLen := r.lengths[i+1] - r.lengths[i]
		if segLen <= 0 {
			continue
		}
		vx, vy := b.X-a.X, b.Y-a.Y
		px, py := p.X-a.X, p.Y-a.Y
		w := lo.Clamp((px*vx+py*vy)/(segLen*segLen), 0, 1)
		foot := geometry.Blend(a, b, w)
		d := geometry.Distance(p, foot)
		if d < best {
			best = d
			s = r.lengths[i] + w*segLen
			if vx*py-vy*px >= 0 {
				l = d
			} else {
				l = -d
			}
		}
	}
	return
}

// 归一化到(-pi, pi]
func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
