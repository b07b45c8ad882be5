package env

import (
	"os"
)

// PodName example: nftswap-api-6868d88fbd-bz8zv, falls back to the hostname
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, _ := os.Hostname()
	return host
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api, cli
func AppName() string {
	return os.Getenv("APP_NAME")
}
