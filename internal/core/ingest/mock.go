package ingest

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/models"
	"github.com/logsleuth/logsleuth/pkg/logrecords"
)

var mockServices = []string{"api-gateway", "auth-service", "orders", "billing", "notifications"}

var mockLines = []struct {
	level   string
	content string
}{
	{"info", "request completed in %dms"},
	{"info", "cache hit for key user:%d"},
	{"warn", "slow query took %dms"},
	{"warn", "retrying upstream call, attempt %d"},
	{"error", "connection refused to downstream on attempt %d"},
	{"error", "timeout after %dms waiting for database"},
}

// GenerateRecords produces count sample records spread across the session's
// time range, for trying the tool out without a cloud log fetcher attached.
func GenerateRecords(session *models.Session, count int) []logrecords.Record {
	span := session.EndTime.Sub(session.StartTime)
	if span <= 0 {
		span = time.Hour
	}

	records := make([]logrecords.Record, 0, count)
	for i := 0; i < count; i++ {
		line := mockLines[rand.Intn(len(mockLines))]
		records = append(records, logrecords.Record{
			Content:   fmt.Sprintf(line.content, rand.Intn(5000)+1),
			Timestamp: session.StartTime.Add(time.Duration(i) * span / time.Duration(count)),
			Service:   mockServices[rand.Intn(len(mockServices))],
			Level:     line.level,
		})
	}
	return records
}
