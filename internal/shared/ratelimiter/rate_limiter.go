// Package ratelimiter は操作の頻度をキーごとに制限します。
package ratelimiter

import (
	"sync"
	"time"
)

// sweepThreshold is the number of tracked keys above which expired windows are dropped.
const sweepThreshold = 1024

type window struct {
	count int
	start time.Time
}

// RateLimiter は固定ウィンドウ方式でキーごとの呼び出し回数を制限します。
// 複数のgoroutineから安全に使えます。
type RateLimiter struct {
	mu       sync.Mutex
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
	now      func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  map[string]*window{},
		now:      time.Now,
	}
}

// Allow はkeyの呼び出しを1回数え、上限以内かどうかを返します。
// 上限を超えた場合は、次にリセットされるまでの時間も返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.start) >= rl.interval {
		if len(rl.windows) >= sweepThreshold {
			rl.sweep(now)
		}
		w = &window{start: now}
		rl.windows[key] = w
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.start)
	}
	return true, 0
}

// sweep は期限切れのウィンドウを削除します。
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
