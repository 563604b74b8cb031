package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/planning/v2/lattice"
	"git.fiblab.net/sim/planning/v2/obstacle"
	"git.fiblab.net/sim/planning/v2/refline"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
)

var (
	// 配置信息
	obstacleCount = flag.Int("obstacles", 100, "the random obstacle count per cycle")
	cycleCount    = flag.Int("cycles", 1000, "the planning cycle count for benchmark")
	seed          = flag.Int64("seed", 0, "the seed for benchmark")
	logLevel      = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")
	pprofAddr     = flag.String("pprof", "", "pprof listening address (empty means disable)")

	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}

	log = logrus.WithField("module", "benchmark")
)

// 直线参考线 + 随机匀速障碍物场景
func randomScenario(e *rand.Rand) (*refline.DiscretizedRefLine, []*obstacle.Obstacle) {
	line := make([]geometry.Point, 0)
	for s := 0.0; s <= 400.0; s += 10.0 {
		line = append(line, geometry.Point{X: s})
	}
	ref := refline.New(line)

	obstacles := make([]*obstacle.Obstacle, *obstacleCount)
	for i := range obstacles {
		x := e.Float64() * 400.0
		y := e.Float64()*20.0 - 10.0
		vx := e.Float64() * 15.0
		vy := e.Float64()*2.0 - 1.0
		trajectory := make([]obstacle.TrajectoryPoint, 0)
		for t := 0.0; t <= lattice.PLANNED_TRAJECTORY_TIME; t += 1.0 {
			trajectory = append(trajectory, obstacle.TrajectoryPoint{
				Pos:          geometry.Point{X: x + vx*t, Y: y + vy*t},
				Theta:        0,
				V:            vx,
				RelativeTime: t,
			})
		}
		obstacles[i] = &obstacle.Obstacle{
			ID:         fmt.Sprintf("obstacle-%d", i),
			Length:     4.5,
			Width:      2.0,
			Velocity:   geometry.Point{X: vx, Y: vy},
			Trajectory: trajectory,
		}
	}
	return ref, obstacles
}

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	flag.Parse()
	if level, ok := LOG_LEVELS[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", *logLevel)
	}

	if *pprofAddr != "" {
		// 启动pprof
		startProfiler(*pprofAddr)
	}

	// 设置随机种子
	e := rand.New(rand.NewSource(*seed))
	ref, obstacles := randomScenario(e)

	// 开始benchmark
	start := time.Now()
	total := 0
	for i := 0; i < *cycleCount; i++ {
		n := lattice.NewNeighborhood(obstacles, [3]float64{0, 0, 0}, ref)
		total += len(n.GetPathTimeObstacles())
	}
	timeCost := time.Since(start)
	log.Info(
		"benchmark finished", "\n",
		"cycles:", *cycleCount, "\n",
		"time:", timeCost, "\n",
		"avg:", timeCost/time.Duration(*cycleCount), "\n",
		"regions:", total, "\n",
	)
}
