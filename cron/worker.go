package cron

import (
	"context"
	"log"
	"time"

	"hausly/config"
	couponRepo "hausly/database/repository/coupon"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCouponExpire = "coupon:expire"

// InitCouponSweeper runs an async worker that periodically deactivates
// expired coupons so the storefront never serves a stale discount.
func InitCouponSweeper(repo couponRepo.CouponRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCouponExpire, handleCouponExpire(repo))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Printf("[CouponSweeper] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeCouponExpire, nil)); err != nil {
		log.Printf("[CouponSweeper] failed to register schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[CouponSweeper] scheduler stopped: %v", err)
		}
	}()
}

func handleCouponExpire(repo couponRepo.CouponRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		n, err := repo.DeactivateExpired(ctx, time.Now())
		if err != nil {
			zap.L().Error("coupon sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			zap.L().Info("deactivated expired coupons", zap.Int64("count", n))
		}
		return nil
	}
}
