package ghostdagmanager

import "github.com/kaspanet/ghostdag-core/infrastructure/logger"

var log = logger.Get(logger.SubsystemTags.GDAG)
