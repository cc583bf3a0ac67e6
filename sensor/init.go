package sensor

import (
	"gitlab.com/nunet/gputemp/internal/logger"
)

var zlog *logger.Logger

func init() {
	zlog = logger.New("sensor")
}
