package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the quest log sweep job
const (
	LogMsgQuestSweepStarting  = "Stale quest log sweep starting"
	LogMsgQuestSweepCompleted = "Stale quest log sweep completed"
)
