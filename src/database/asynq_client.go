package database

import (
	"Backend-FormFlow/src/logger"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// AsynqRedisOpt returns the connection used by the asynq client, server and scheduler.
func AsynqRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     redisCfg.URI,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}
}

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq() {
	if RedisClient == nil {
		logger.Warn("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(AsynqRedisOpt())
	logger.Info("✅ Asynq Client initialized successfully")
}

// CloseAsynq ปิด client ตอน shutdown
func CloseAsynq() error {
	if AsynqClient == nil {
		return nil
	}
	return AsynqClient.Close()
}
