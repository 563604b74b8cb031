package lattice

const (
	// 规划时域/s
	PLANNED_TRAJECTORY_TIME = 8.0
	// 纵向规划视距/m
	PLANNED_TRAJECTORY_HORIZON = 200.0
	// 障碍物预测轨迹的时间采样步长/s
	TRAJECTORY_TIME_RESOLUTION = 0.1
	// 障碍物视为进入车道的横向距离阈值/m
	LATERAL_ENTER_LANE_THRED = 2.0
)
