package redisx

import "time"

const (
	// Rate limit order submissions: ratelimit:order:{client_ip}:{window_unix} -> count
	KeyOrderRateLimit = "ratelimit:order:%s:%d"
)

var (
	OrderRateWindow = time.Minute
)
