package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKeyCtx = "idempotency_cache_key"
	IdempotencyLockKeyCtx  = "idempotency_lock_key"
)

// CachedResponse adalah bentuk yang disimpan handler di Redis agar replay
// mengembalikan status dan envelope yang sama dengan response pertama.
type CachedResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency melindungi POST dari double-submit (mis. user menekan tombol
// kirim dua kali). Client mengirim header Idempotency-Key; response pertama
// di-cache dan dikembalikan lagi untuk key yang sama.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")

		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.ClientIP(), idempKey)
		lockKey := cacheKey + ":lock"

		// 1. Cek cache: request yang sama sudah pernah sukses, replay
		// dengan status dan envelope yang sama persis
		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached CachedResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil && cached.Status != 0 {
				c.Abort()
				response.Success(c, cached.Status, cached.Data, nil)
				return
			}
		}

		// 2. Atomic lock (SetNX). Expiry pendek agar lock hilang sendiri
		// jika server crash di tengah proses.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Pengajuan Anda sedang diproses, mohon tunggu sebentar.",
			})
			return
		}

		// Key diteruskan ke handler agar bisa menyimpan hasil / melepas lock
		c.Set(IdempotencyCacheKeyCtx, cacheKey)
		c.Set(IdempotencyLockKeyCtx, lockKey)

		c.Next()
	}
}
