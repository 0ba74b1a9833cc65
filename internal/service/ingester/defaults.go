package ingester

import "time"

const (
	fileExtension = ".blk"

	defaultWorkerCount  = 4
	defaultPollInterval = 30 * time.Second
	errorSleepDuration  = 5 * time.Second

	changeBatcherCapacity     = 10_000
	blockBatcherCapacity      = 1000
	batcherFlushInterval      = 5 * time.Second
	defaultBatcherFlushPerSec = 20
)
