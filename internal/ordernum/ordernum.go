// Package ordernum generates human-readable order numbers such as SO-20260116-3F9A2C01.
package ordernum

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixSale     = "SO"
	PrefixPurchase = "PO"
)

func New(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + now.Format("20060102") + "-" + suffix
}
