package service

const (
	// defaultChunkSize bounds participants per declareResults transaction.
	defaultChunkSize = 200
	// defaultPendingLimit bounds participants loaded per challenge.
	defaultPendingLimit = 2000
	// defaultDetailWorkerCount bounds concurrent participant caching across
	// distinct challenges.
	defaultDetailWorkerCount = 8
	// defaultOracleRatePerSecond bounds progress oracle lookups.
	defaultOracleRatePerSecond = 10
)
