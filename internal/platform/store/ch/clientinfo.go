package ch

import (
	"os"
	"runtime"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"alaynorm/internal/core/version"
)

// BuildClientInfo names this process in system.query_log
// role is the binary, e.g. "alaynorm-batch"
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	products := []struct{ Name, Version string }{
		{Name: "alaynorm", Version: strings.TrimSpace(tag)},
		{Name: "role", Version: strings.TrimSpace(role)},
		{Name: "go", Version: runtime.Version()},
		{Name: "commit", Version: version.ShortCommit()},
		{Name: "host", Version: strings.TrimSpace(host)},
	}
	return clickhouse.ClientInfo{Products: products}
}
