package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotaRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storage_quota_rejections_total",
		Help: "Reservations refused because they would exceed the owner's quota.",
	})
	bytesReserved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storage_bytes_reserved_total",
		Help: "Bytes added to owners' storage usage.",
	})
	bytesReleased = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storage_bytes_released_total",
		Help: "Bytes removed from owners' storage usage.",
	})
	blobCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storage_blob_cleanup_failures_total",
		Help: "Blob deletions that failed and were left for manual cleanup.",
	})
)
