package lattice

// (s,t)图上的一个采样点
type PathTimePoint struct {
	ObstacleID string
	S          float64 // 参考线纵向坐标/m
	T          float64 // 相对规划起点的时间/s
}

// 单个障碍物在规划时域内占据的(s,t)区域
type PathTimeObstacle struct {
	ID string
	// 左侧角点对应首个相关采样，右侧角点对应最后一个相关采样
	BottomLeft  PathTimePoint
	UpperLeft   PathTimePoint
	BottomRight PathTimePoint
	UpperRight  PathTimePoint
	// 四角点的标量界
	PathLower float64
	PathUpper float64
	TimeLower float64
	TimeUpper float64
}

// 构建过程中单个障碍物的累积阶段
type regionState int

const (
	// 尚未出现相关采样
	regionEmpty regionState = iota
	// 左角点已冻结，右角点随后续相关采样更新
	regionOpen
)

// 构建期的单障碍物累加器，完成后转为只读的PathTimeObstacle
type regionAccumulator struct {
	state  regionState
	region PathTimeObstacle
	// 沿参考线的纵向速度/(m/s)
	speed float64
}
